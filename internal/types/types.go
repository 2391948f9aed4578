package types

// EntityID стабилен: не меняется при удалении соседей из списка
type EntityID uint64
