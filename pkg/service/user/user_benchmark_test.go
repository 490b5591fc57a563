package user_test

import (
	"context"
	"testing"

	"github.com/agrosphere/backend/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// Dominated by bcrypt; useful for spotting accidental cost bumps.
func BenchmarkCreateUser(b *testing.B) {
	svc, userRepo, _ := newUserServiceWithMocks(b)
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = svc.CreateUser(context.Background(), &dto.UserCreate{
			Username: "benchuser",
			Email:    "bench@example.com",
			Password: "password",
		})
	}
}
