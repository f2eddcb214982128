package repository

// CacheRepository cachea resultados de cálculo serializados, por clave
// de entrada.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
