// Package roster implements a broadcast hub for roster-change notifications.
// Whenever a team, coach, or player is registered, the handlers publish an event
// for the affected team; any connected feed client watching that team receives it.
// Feed clients (e.g. a dashboard keeping a roster view current) register with the
// key of the team they care about.
package roster

import (
	"encoding/json"
	"sync"
)

// Event describes a single roster change. It is what gets serialized onto the feed.
type Event struct {
	Entity string `json:"entity"` // "team", "coach", or "player"
	Name   string `json:"name"`   // display name of the added entity
	Team   string `json:"team"`   // the team key the event belongs to
}

// Client represents one connected feed consumer.
// The Hub writes serialized events into Send; the transport drains it.
type Client struct {
	TeamKey string      // which team's roster this client is watching
	Send    chan []byte // buffered channel of outgoing events
}

// update pairs an event payload with the team key used to route it.
type update struct {
	teamKey string
	data    []byte
}

// Hub tracks feed clients grouped by team key and fans events out to them.
// All map mutation happens on the Run goroutine; registration, unregistration,
// and publication arrive over channels, so handler goroutines never touch the
// maps directly.
type Hub struct {
	clients map[string]map[*Client]bool

	broadcast  chan update
	register   chan *Client
	unregister chan *Client

	// mu guards clients for the read in the broadcast case; RWMutex because
	// broadcasts only read the set while (un)registration mutates it.
	mu sync.RWMutex
}

// NewHub creates a Hub ready to Run. The broadcast channel is buffered so a
// registration handler never blocks on publishing just because the loop is busy.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan update, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the Hub's event loop; call it in its own goroutine ("go hub.Run()").
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.TeamKey] == nil {
				h.clients[client.TeamKey] = make(map[*Client]bool)
			}
			h.clients[client.TeamKey][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.drop(client)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			watchers := make([]*Client, 0, len(h.clients[msg.teamKey]))
			for client := range h.clients[msg.teamKey] {
				watchers = append(watchers, client)
			}
			h.mu.RUnlock()

			var slow []*Client
			for _, client := range watchers {
				select {
				case client.Send <- msg.data:
				default:
					// Full buffer means the consumer stopped draining.
					// Evict it instead of stalling every other watcher.
					slow = append(slow, client)
				}
			}
			if len(slow) > 0 {
				h.mu.Lock()
				for _, client := range slow {
					h.drop(client)
				}
				h.mu.Unlock()
			}
		}
	}
}

// drop removes a client and closes its Send channel. Callers must hold mu.
func (h *Hub) drop(client *Client) {
	watchers, ok := h.clients[client.TeamKey]
	if !ok {
		return
	}
	if _, ok := watchers[client]; !ok {
		return
	}
	delete(watchers, client)
	close(client.Send)
	if len(watchers) == 0 {
		delete(h.clients, client.TeamKey)
	}
}

// Publish serializes the event and queues it for every client watching its team.
// A serialization failure is impossible for Event's field types, but the error
// is still surfaced so callers can log it.
func (h *Hub) Publish(evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	h.broadcast <- update{teamKey: evt.Team, data: data}
	return nil
}

// Register adds a client so it starts receiving events for its team.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client when its connection closes.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
