package sse

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type (
	// Listener is the receiving end of the broadcast channel.
	Listener interface {
		ID() string
		Chan() chan Envelope
	}

	// Envelope is content that can be broadcast to clients.
	Envelope interface {
		String() string
	}

	// Manager fans messages out to every connected client. Delivery is
	// best effort: a slow or dead client never blocks the sender or the
	// other clients.
	Manager interface {
		Send(message Envelope)
		Handle(ctx *fiber.Ctx, cl Listener)
		Register(cl Listener)
		Unregister(id string)
		Clients() []string
	}
)

// Client is the default Listener with a buffered channel.
type Client struct {
	id string
	ch chan Envelope
}

func NewClient(id string) Listener {
	return &Client{
		id: id,
		ch: make(chan Envelope, 50),
	}
}

func (c *Client) ID() string          { return c.id }
func (c *Client) Chan() chan Envelope { return c.ch }

// Message is a plain SSE frame.
type Message struct {
	Event string
	Time  time.Time
	Data  string
}

func NewMessage(data string) *Message {
	return &Message{
		Data: data,
		Time: time.Now(),
	}
}

func (m *Message) String() string {
	sb := strings.Builder{}
	if m.Event != "" {
		sb.WriteString(fmt.Sprintf("event: %s\n", m.Event))
	}
	sb.WriteString(fmt.Sprintf("data: %v\n\n", m.Data))
	return sb.String()
}

// WithEvent sets the event name for the message.
func (m *Message) WithEvent(event string) Envelope {
	m.Event = event
	return m
}

type broadcastManager struct {
	clients        sync.Map
	broadcast      chan Envelope
	workerPoolSize int
	messageHistory *history
}

// NewManager initializes a Manager with the given number of fan-out
// workers.
func NewManager(workerPoolSize int) Manager {
	manager := &broadcastManager{
		broadcast:      make(chan Envelope),
		workerPoolSize: workerPoolSize,
		messageHistory: newHistory(10),
	}

	manager.startWorkers()

	return manager
}

// Send broadcasts a message to all connected clients.
func (manager *broadcastManager) Send(message Envelope) {
	manager.broadcast <- message
}

// Handle attaches a client to an SSE response and streams broadcasts until
// the connection goes away.
func (manager *broadcastManager) Handle(c *fiber.Ctx, cl Listener) {
	manager.Register(cl)
	ctx := c.Context()

	ctx.SetContentType("text/event-stream")
	ctx.Response.Header.Set("Cache-Control", "no-cache")
	ctx.Response.Header.Set("Connection", "keep-alive")
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Cache-Control")
	ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
	ctx.Response.Header.Set("X-Accel-Buffering", "no")

	manager.messageHistory.Send(cl)

	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			manager.Unregister(cl.ID())
			close(cl.Chan())
			close(done)
		case <-done:
			return
		}
	}()

	ctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			close(done)
			manager.Unregister(cl.ID())
			close(cl.Chan())
		}()

		fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
		w.Flush()

		for {
			select {
			case msg, ok := <-cl.Chan():
				if !ok {
					return
				}
				_, err := fmt.Fprint(w, msg.String())
				if err != nil {
					return
				}
				w.Flush()

			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}))
}

// Register adds a client to the manager. Exposed so that non-HTTP
// consumers (and tests) can observe broadcasts directly.
func (manager *broadcastManager) Register(client Listener) {
	manager.clients.Store(client.ID(), client)
}

// Unregister removes a client from the manager.
func (manager *broadcastManager) Unregister(clientID string) {
	manager.clients.Delete(clientID)
}

// Clients lists connected client IDs.
func (manager *broadcastManager) Clients() []string {
	var clients []string
	manager.clients.Range(func(key, value any) bool {
		id, ok := key.(string)
		if ok {
			clients = append(clients, id)
		}
		return true
	})
	return clients
}

func (manager *broadcastManager) startWorkers() {
	for i := 0; i < manager.workerPoolSize; i++ {
		go func() {
			for message := range manager.broadcast {
				manager.clients.Range(func(key, value any) bool {
					client, ok := value.(Listener)
					if !ok {
						return true
					}
					select {
					case client.Chan() <- message:
						manager.messageHistory.Add(message)
					default:
						// Client channel full: drop rather than block.
					}
					return true
				})
			}
		}()
	}
}

type history struct {
	mu       sync.Mutex
	messages []Envelope
	maxSize  int
}

func newHistory(maxSize int) *history {
	return &history{
		messages: []Envelope{},
		maxSize:  maxSize,
	}
}

func (h *history) Add(message Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, message)
	if len(h.messages) > h.maxSize {
		h.messages = h.messages[len(h.messages)-h.maxSize:]
	}
}

func (h *history) Send(c Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, msg := range h.messages {
		select {
		case c.Chan() <- msg:
		default:
		}
	}
}
