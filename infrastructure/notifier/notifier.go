package notifier

import "github.com/sirupsen/logrus"

// EventType identifica o tipo de notificação disparada pelo núcleo.
type EventType string

const (
	EventOrderCreated           EventType = "order_created"
	EventOrderStatusChanged     EventType = "order_status_changed"
	EventPlacementStatusChanged EventType = "placement_status_changed"
	EventOrderMessage           EventType = "order_message"
	EventProofUploaded          EventType = "proof_uploaded"
)

// Event é o payload mínimo repassado ao serviço de notificações/e-mail.
type Event struct {
	Type          EventType `json:"type"`
	OrderID       string    `json:"order_id"`
	CampaignID    string    `json:"campaign_id,omitempty"`
	PublicationID string    `json:"publication_id,omitempty"`
	Detail        string    `json:"detail,omitempty"`
}

// Notifier é o colaborador fire-and-forget de notificações. A entrega real
// (e-mail, push) fica em um serviço externo; aqui só publicamos o evento.
type Notifier interface {
	Notify(event Event) error
}

// LogNotifier registra os eventos no log da aplicação. É a implementação
// padrão enquanto o serviço de notificações não está plugado no ambiente.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(event Event) error {
	logrus.WithFields(logrus.Fields{
		"event":          event.Type,
		"order_id":       event.OrderID,
		"campaign_id":    event.CampaignID,
		"publication_id": event.PublicationID,
	}).Info("notifier: evento publicado")
	return nil
}
