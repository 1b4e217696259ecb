package booking

import "localserve/models"

// SendMessage appends a chat message for a booking request and broadcasts it
// to the request's chat room.
func (s *Store) SendMessage(requestID int, sender, text string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        len(s.messages) + 1,
		RequestID: requestID,
		Sender:    sender,
		Message:   text,
		Timestamp: s.timestamp(),
	}
	s.messages = append(s.messages, msg)

	s.notifier.NotifyChat(requestID, "new_message", msg)
	return msg
}

// MessagesFor returns every message attached to a booking request, oldest
// first.
func (s *Store) MessagesFor(requestID int) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.ChatMessage{}
	for _, m := range s.messages {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	return out
}
