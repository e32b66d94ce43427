package models

import "time"

// DealerCategory is the coarse dealer classification used by the locator filter.
type DealerCategory string

// Dealer categories.
const (
	CategoryShowroom    DealerCategory = "Showroom"
	CategoryDealer      DealerCategory = "Dealer"
	CategoryDistributor DealerCategory = "Distributor"
)

// DealerType is the detailed outlet type of a dealer.
type DealerType string

// Dealer types.
const (
	TypeFlagshipShowroom  DealerType = "Flagship Showroom"
	TypeExclusiveShowroom DealerType = "Exclusive Showroom"
	TypeAuthorizedDealer  DealerType = "Authorized Dealer"
	TypeDistributor       DealerType = "Distributor"
	TypePartnerStore      DealerType = "Partner Store"
	TypeExperienceCenter  DealerType = "Experience Center"
)

// MessageSender identifies the author of a chat message.
type MessageSender string

// Message senders.
const (
	SenderUser  MessageSender = "user"
	SenderAgent MessageSender = "agent"
)

// DeliveryStatus is the delivery state of a user chat message.
// It only ever advances: sending -> sent -> delivered -> read.
type DeliveryStatus string

// Delivery statuses.
const (
	StatusSending   DeliveryStatus = "sending"
	StatusSent      DeliveryStatus = "sent"
	StatusDelivered DeliveryStatus = "delivered"
	StatusRead      DeliveryStatus = "read"
)

var statusRank = map[DeliveryStatus]int{
	StatusSending:   0,
	StatusSent:      1,
	StatusDelivered: 2,
	StatusRead:      3,
}

// Before reports whether s precedes other in the delivery progression.
// Unknown statuses never precede anything.
func (s DeliveryStatus) Before(other DeliveryStatus) bool {
	sRank, ok := statusRank[s]
	if !ok {
		return false
	}
	otherRank, ok := statusRank[other]
	if !ok {
		return false
	}
	return sRank < otherRank
}

// Product is a catalog tile. The catalog is static and read-only at runtime.
// Comparison attributes which may be missing are pointers.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Finish      string `json:"finish"`
	Size        string `json:"size"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	Price           *float64 `json:"price,omitempty"`
	Color           *string  `json:"color,omitempty"`
	Thickness       *string  `json:"thickness,omitempty"`
	WaterAbsorption *string  `json:"waterAbsorption,omitempty"`
	SlipResistance  *string  `json:"slipResistance,omitempty"`
	Usage           *string  `json:"usage,omitempty"`

	Specifications map[string]string `json:"specifications,omitempty"`
}

// Dealer is a dealer-locator entry. The dealer list is static and read-only.
type Dealer struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     DealerType     `json:"type"`
	Category DealerCategory `json:"category"`

	Country  string `json:"country"`
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Phone string `json:"phone"`
	Email string `json:"email"`

	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`

	Services  []string `json:"services,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// ChatMessage is a single chat widget message. User messages carry a delivery
// status, agent messages carry the agent display name.
type ChatMessage struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Sender    MessageSender  `json:"sender"`
	Timestamp time.Time      `json:"timestamp"`
	Status    DeliveryStatus `json:"status,omitempty"`
	AgentName *string        `json:"agentName,omitempty"`
}

// RecentEntry is a recently-viewed page record.
type RecentEntry struct {
	Page      string `json:"page"`
	Timestamp int64  `json:"timestamp"`
}

// FAQ is a frequently-asked-questions entry.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}
