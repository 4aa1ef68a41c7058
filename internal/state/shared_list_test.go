package state

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"clientdesk/internal/models"
)

type SharedListSuite struct {
	suite.Suite
	list *SharedList
}

func (s *SharedListSuite) SetupTest() {
	s.list = NewSharedList()
}

func TestSharedListSuite(t *testing.T) {
	suite.Run(t, new(SharedListSuite))
}

func (s *SharedListSuite) seed(ids ...int) {
	clients := make([]models.Client, 0, len(ids))
	for _, id := range ids {
		clients = append(clients, models.Client{ID: id, Name: "c"})
	}
	s.list.ReplaceClients(clients)
}

func (s *SharedListSuite) TestReplaceIsWholesale() {
	s.seed(1, 2, 3)
	s.seed(9)
	clients := s.list.Clients()
	s.Require().Len(clients, 1)
	s.Equal(9, clients[0].ID)
}

func (s *SharedListSuite) TestRemoveClient() {
	s.Run("removes the matching id", func() {
		s.seed(40, 41, 42, 43)
		s.True(s.list.RemoveClient(42))

		clients := s.list.Clients()
		s.Len(clients, 3)
		for _, c := range clients {
			s.NotEqual(42, c.ID)
		}
	})

	s.Run("missing id leaves the list untouched", func() {
		s.seed(1, 2)
		s.False(s.list.RemoveClient(99))
		s.Len(s.list.Clients(), 2)
	})
}

func (s *SharedListSuite) TestResetClients() {
	s.seed(1, 2)
	s.list.SetNoResults(true)

	s.list.ResetClients()

	s.Empty(s.list.Clients())
	s.False(s.list.NoResults())
}

func (s *SharedListSuite) TestResetIsIdempotent() {
	s.list.ResetClients()
	s.Empty(s.list.Clients())
	s.False(s.list.NoResults())
}

func (s *SharedListSuite) TestInvalidateClients() {
	s.seed(1, 2)
	s.list.InvalidateClients()
	s.Empty(s.list.Clients())
}

func (s *SharedListSuite) TestReceipts() {
	s.list.ReplaceReceipts([]models.Receipt{{ID: 1}, {ID: 2}})
	s.Len(s.list.Receipts(), 2)

	s.list.SetNoResults(true)
	s.list.ResetReceipts()
	s.Empty(s.list.Receipts())
	s.False(s.list.NoResults())
}

func (s *SharedListSuite) TestClientsReturnsCopy() {
	s.seed(1)
	got := s.list.Clients()
	got[0].ID = 77
	s.Equal(1, s.list.Clients()[0].ID)
}
