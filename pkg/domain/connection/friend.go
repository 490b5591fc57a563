package connection

import (
	"time"

	"github.com/google/uuid"
)

// PairRow is the flat shape a connection query produces when it joins the
// user table on both sides of the row. Which side is "the other party"
// depends on the viewer, so the reshaping lives here as a pure function
// instead of a CASE expression buried in SQL.
type PairRow struct {
	ConnectionID      uuid.UUID
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
	RequesterID       uuid.UUID
	RequesterUsername string
	RequesterNames    string
	RequesterArea     string
	RequesterCity     string
	RequesterCountry  string
	ReceiverID        uuid.UUID
	ReceiverUsername  string
	ReceiverNames     string
	ReceiverArea      string
	ReceiverCity      string
	ReceiverCountry   string
}

// Friend is the uniform counterpart shape returned by connection listings:
// always the other party's fields, never the viewer's own.
type Friend struct {
	ConnectionID uuid.UUID `json:"connection_id"`
	Status       Status    `json:"status"`
	Direction    Direction `json:"direction"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Names        string    `json:"names"`
	Area         string    `json:"area"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	ConnectedAt  time.Time `json:"connected_at"`
}

// ResolveFriend maps a flat pair row to the counterpart seen by viewerID.
func ResolveFriend(row PairRow, viewerID uuid.UUID) Friend {
	f := Friend{
		ConnectionID: row.ConnectionID,
		Status:       row.Status,
		ConnectedAt:  row.UpdatedAt,
	}
	if row.RequesterID == viewerID {
		f.Direction = DirectionSent
		f.UserID = row.ReceiverID
		f.Username = row.ReceiverUsername
		f.Names = row.ReceiverNames
		f.Area = row.ReceiverArea
		f.City = row.ReceiverCity
		f.Country = row.ReceiverCountry
		return f
	}
	f.Direction = DirectionReceived
	f.UserID = row.RequesterID
	f.Username = row.RequesterUsername
	f.Names = row.RequesterNames
	f.Area = row.RequesterArea
	f.City = row.RequesterCity
	f.Country = row.RequesterCountry
	return f
}
