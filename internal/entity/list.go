package entity

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"go-cave-rhythm/internal/types"
)

// List — упорядоченный список сущностей с отложенным удалением.
// Во время прохода обновления индексы стабильны: MarkRemoved только запоминает
// индекс, а Flush удаляет всё разом в порядке убывания индексов.
type List struct {
	items   []*Entity
	removed mapset.Set[int]
	nextID  types.EntityID
}

// NewList создаёт пустой список.
func NewList() *List {
	return &List{
		removed: mapset.New[int](),
		nextID:  1,
	}
}

// NewEntity выдаёт следующий стабильный ID.
func (l *List) NewEntity() types.EntityID {
	id := l.nextID
	l.nextID++
	return id
}

// Add добавляет сущность в конец списка, назначая ID, если он не задан.
func (l *List) Add(e *Entity) *Entity {
	if e.ID == 0 {
		e.ID = l.NewEntity()
	} else if e.ID >= l.nextID {
		l.nextID = e.ID + 1
	}
	l.items = append(l.items, e)
	return e
}

// Reset заменяет содержимое целиком (при регенерации уровня).
func (l *List) Reset(items []*Entity) {
	l.items = make([]*Entity, 0, len(items))
	l.removed = mapset.New[int]()
	for _, e := range items {
		l.Add(e)
	}
}

func (l *List) Len() int {
	return len(l.items)
}

// At возвращает сущность по индексу.
func (l *List) At(i int) *Entity {
	return l.items[i]
}

// All возвращает срез сущностей. Срез нельзя сохранять между кадрами.
func (l *List) All() []*Entity {
	return l.items
}

// IndexOf ищет индекс сущности по ID, -1 если нет.
func (l *List) IndexOf(id types.EntityID) int {
	for i, e := range l.items {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// ByID ищет сущность по ID.
func (l *List) ByID(id types.EntityID) (*Entity, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l.items[i], true
	}
	return nil, false
}

// MarkRemoved помечает индекс на удаление в конце кадра. Повторная пометка ничего не меняет.
func (l *List) MarkRemoved(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.removed.Put(i)
}

// IsMarked сообщает, помечен ли индекс на удаление.
func (l *List) IsMarked(i int) bool {
	return l.removed.Has(i)
}

// Flush удаляет помеченные сущности в порядке убывания индексов
// и возвращает их в этом же порядке.
func (l *List) Flush() []*Entity {
	if l.removed.Size() == 0 {
		return nil
	}
	indices := make([]int, 0, l.removed.Size())
	l.removed.Each(func(i int) {
		indices = append(indices, i)
	})
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	gone := make([]*Entity, 0, len(indices))
	for _, i := range indices {
		gone = append(gone, l.items[i])
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
	l.removed = mapset.New[int]()
	return gone
}
