package events

import (
	"fmt"
	"sync"

	"aula/internal/shared/logger"
)

// InMemoryEventDispatcher is an in-process implementation of EventDispatcher.
// Events are queued on a buffered channel and handled asynchronously.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	log      logger.Interface
}

// NewInMemoryEventDispatcher creates a dispatcher with the given buffer size.
func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		log:      log,
	}
}

// Publish queues a single event for handling.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

// PublishAll queues multiple events for handling.
func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

// Subscribe registers a handler for an event type.
func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

// Start begins processing queued events.
func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()
	return nil
}

// Stop drains the queue and stops processing.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			// Drain remaining events before returning.
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryEventDispatcher) handleEvent(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			d.log.Errorw("failed to handle domain event",
				"event_type", event.GetEventType(),
				"aggregate_id", event.GetAggregateID(),
				"error", err,
			)
		}
	}
}

// SimpleEventHandler adapts a function to the EventHandler interface.
type SimpleEventHandler struct {
	eventType string
	handler   func(DomainEvent) error
}

// NewSimpleEventHandler creates a handler for a single event type.
func NewSimpleEventHandler(eventType string, handler func(DomainEvent) error) *SimpleEventHandler {
	return &SimpleEventHandler{eventType: eventType, handler: handler}
}

func (h *SimpleEventHandler) Handle(event DomainEvent) error {
	if h.handler != nil {
		return h.handler(event)
	}
	return nil
}

func (h *SimpleEventHandler) CanHandle(eventType string) bool {
	return h.eventType == eventType
}
