// internal/types/types.go
package types

// EntityID идентифицирует сущность в ECS
type EntityID uint64
