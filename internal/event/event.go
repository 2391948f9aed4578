// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // полезная нагрузка, тип зависит от Type
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер. События, поставленные в очередь через Queue,
// доставляются только при Flush: так проход симуляции не реагирует на собственные
// события посреди итерации.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queue     []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — немедленная отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Queue откладывает событие до следующего Flush.
func (d *Dispatcher) Queue(event Event) {
	d.queue = append(d.queue, event)
}

// Flush доставляет накопленные события в порядке постановки.
// События, поставленные обработчиками во время Flush, уходят в этот же Flush.
func (d *Dispatcher) Flush() {
	for i := 0; i < len(d.queue); i++ {
		d.Dispatch(d.queue[i])
	}
	d.queue = d.queue[:0]
}

// Pending — число событий в очереди.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}
