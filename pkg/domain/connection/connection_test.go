package connection_test

import (
	"testing"
	"time"

	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKey_OrderIndependent(t *testing.T) {
	t.Parallel()
	a := uuid.New()
	b := uuid.New()
	assert.Equal(t, connection.PairKey(a, b), connection.PairKey(b, a))
	assert.NotEqual(t, connection.PairKey(a, b), connection.PairKey(a, uuid.New()))
}

func TestParseDecision(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		in      string
		want    connection.Status
		wantErr bool
	}{
		{in: "accepted", want: connection.StatusAccepted},
		{in: " Rejected ", want: connection.StatusRejected},
		{in: "pending", wantErr: true},
		{in: "", wantErr: true},
		{in: "maybe", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := connection.ParseDecision(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, connection.ErrInvalidDecision)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDirectionFor(t *testing.T) {
	t.Parallel()
	requester := uuid.New()
	receiver := uuid.New()
	c := &connection.Connection{RequesterID: requester, ReceiverID: receiver}

	assert.Equal(t, connection.DirectionSent, c.DirectionFor(requester))
	assert.Equal(t, connection.DirectionReceived, c.DirectionFor(receiver))
	assert.Equal(t, connection.DirectionNone, c.DirectionFor(uuid.New()))
}

func TestOtherParty(t *testing.T) {
	t.Parallel()
	requester := uuid.New()
	receiver := uuid.New()
	c := &connection.Connection{RequesterID: requester, ReceiverID: receiver}

	assert.Equal(t, receiver, c.OtherParty(requester))
	assert.Equal(t, requester, c.OtherParty(receiver))
}

func TestResolveFriend(t *testing.T) {
	t.Parallel()
	requester := uuid.New()
	receiver := uuid.New()
	row := connection.PairRow{
		ConnectionID:      uuid.New(),
		Status:            connection.StatusAccepted,
		UpdatedAt:         time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		RequesterID:       requester,
		RequesterUsername: "amadi",
		RequesterNames:    "Amadi Okafor",
		RequesterArea:     "Nsukka",
		RequesterCity:     "Enugu",
		RequesterCountry:  "Nigeria",
		ReceiverID:        receiver,
		ReceiverUsername:  "priya",
		ReceiverNames:     "Priya Raman",
		ReceiverArea:      "Thanjavur",
		ReceiverCity:      "Chennai",
		ReceiverCountry:   "India",
	}

	t.Run("viewer is requester", func(t *testing.T) {
		f := connection.ResolveFriend(row, requester)
		assert.Equal(t, receiver, f.UserID)
		assert.Equal(t, "priya", f.Username)
		assert.Equal(t, "Chennai", f.City)
		assert.Equal(t, connection.DirectionSent, f.Direction)
		assert.Equal(t, row.ConnectionID, f.ConnectionID)
	})

	t.Run("viewer is receiver", func(t *testing.T) {
		f := connection.ResolveFriend(row, receiver)
		assert.Equal(t, requester, f.UserID)
		assert.Equal(t, "amadi", f.Username)
		assert.Equal(t, "Enugu", f.City)
		assert.Equal(t, connection.DirectionReceived, f.Direction)
	})

	t.Run("both viewers see the same connection", func(t *testing.T) {
		a := connection.ResolveFriend(row, requester)
		b := connection.ResolveFriend(row, receiver)
		assert.Equal(t, a.ConnectionID, b.ConnectionID)
		assert.Equal(t, a.Status, b.Status)
		assert.NotEqual(t, a.UserID, b.UserID)
	})
}
