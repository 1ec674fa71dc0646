package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// stubChecker simulates a dependency (store or AI provider) whose health can
// be flipped from the test.
type stubChecker struct {
	name    string
	healthy atomic.Bool
}

func (s *stubChecker) Name() string                               { return s.name }
func (s *stubChecker) IsHealthy() bool                            { return s.healthy.Load() }
func (s *stubChecker) Start(ctx context.Context, _ time.Duration) {}

func TestServiceHealthChecker_FollowsDependencies(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := &stubChecker{name: "store"}
	provider := &stubChecker{name: "ai-provider"}
	db.healthy.Store(true)
	provider.healthy.Store(true)

	svc := NewServiceHealthChecker(zerolog.Nop(), db, provider)
	go svc.Start(ctx, 10*time.Millisecond)

	awaitHealth(t, svc, true)

	// One unhealthy dependency takes the whole service down.
	provider.healthy.Store(false)
	awaitHealth(t, svc, false)

	provider.healthy.Store(true)
	awaitHealth(t, svc, true)
}

func TestServiceHealthChecker_UnhealthyUntilStarted(t *testing.T) {
	svc := NewServiceHealthChecker(zerolog.Nop())
	if svc.IsHealthy() {
		t.Fatal("expected unhealthy before the first evaluation")
	}
}

func awaitHealth(t *testing.T, svc *ServiceHealthChecker, want bool) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if svc.IsHealthy() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("service health never became %v", want)
}
