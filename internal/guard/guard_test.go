package guard

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/eluxe/eluxe-backend/internal/store"
)

func newTestGuard() (*Guard, *store.Memory) {
	mem := store.NewMemory()
	return New(mem), mem
}

func TestRequestLoginRequiresIdentity(t *testing.T) {
	g, _ := newTestGuard()

	_, _, err := g.RequestLogin(context.Background(), "", "1.1.1.1", "chrome-mac")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestConsumeCodeRequiresInputs(t *testing.T) {
	g, _ := newTestGuard()

	if err := g.ConsumeCode(context.Background(), "", "1.1.1.1", "chrome-mac", "123456"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty identity, got %v", err)
	}
	if err := g.ConsumeCode(context.Background(), "a@x.com", "1.1.1.1", "chrome-mac", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty code, got %v", err)
	}
}

func TestFirstAttemptNeverAnomalous(t *testing.T) {
	g, _ := newTestGuard()

	for i := 0; i < 20; i++ {
		identity := "user" + strconv.Itoa(i) + "@x.com"
		_, anomaly, err := g.RequestLogin(context.Background(), identity, "1.1.1.1", "chrome-mac")
		if err != nil {
			t.Fatalf("RequestLogin failed: %v", err)
		}
		if anomaly {
			t.Fatalf("never-seen identity %s flagged as anomalous", identity)
		}
	}
}

func TestConsumeIsSingleUse(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	code, _, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}

	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); err != nil {
		t.Fatalf("first consumption failed: %v", err)
	}
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("replay should fail with ErrInvalidCode, got %v", err)
	}
}

func TestWrongCodeLeavesPendingIntact(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	code, _, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", wrong); !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("wrong code should fail with ErrInvalidCode, got %v", err)
	}

	// The real code still works after the failed attempt.
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); err != nil {
		t.Fatalf("valid code rejected after a failed attempt: %v", err)
	}
}

func TestReissueInvalidatesOldCode(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	oldCode, _, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}
	newCode, _, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("second RequestLogin failed: %v", err)
	}

	if oldCode != newCode {
		if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", oldCode); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("superseded code should fail with ErrInvalidCode, got %v", err)
		}
	}
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", newCode); err != nil {
		t.Fatalf("current code rejected: %v", err)
	}
}

func TestUnknownIdentityConsumeFails(t *testing.T) {
	g, _ := newTestGuard()

	err := g.ConsumeCode(context.Background(), "nobody@x.com", "1.1.1.1", "chrome-mac", "123456")
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("unknown identity should fail with ErrInvalidCode, got %v", err)
	}
}

func TestAnomalyFollowsBaseline(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	// Establish a baseline at A1/D1.
	code, anomaly, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}
	if anomaly {
		t.Fatal("first attempt flagged as anomalous")
	}
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); err != nil {
		t.Fatalf("consumption failed: %v", err)
	}

	// Same address and device: no anomaly.
	if _, anomaly, err = g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac"); err != nil || anomaly {
		t.Fatalf("same address/device flagged as anomalous (err=%v)", err)
	}

	// New address: anomaly.
	if _, anomaly, err = g.RequestLogin(ctx, "a@x.com", "9.9.9.9", "chrome-mac"); err != nil || !anomaly {
		t.Fatalf("new address not flagged as anomalous (err=%v)", err)
	}

	// Same address, new device: anomaly.
	if _, anomaly, err = g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "firefox-linux"); err != nil || !anomaly {
		t.Fatalf("new device not flagged as anomalous (err=%v)", err)
	}
}

func TestBaselineMovesOnlyOnConsumption(t *testing.T) {
	g, mem := newTestGuard()
	ctx := context.Background()

	code, _, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); err != nil {
		t.Fatalf("consumption failed: %v", err)
	}

	// An anomalous attempt alone must not refresh the baseline.
	if _, _, err := g.RequestLogin(ctx, "a@x.com", "9.9.9.9", "firefox-linux"); err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}

	record, err := mem.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if record.LastAddress != "1.1.1.1" || record.LastDeviceSignature != "chrome-mac" {
		t.Fatalf("baseline moved on a mere attempt: %q / %q", record.LastAddress, record.LastDeviceSignature)
	}
}

func TestVerificationRefreshesBaseline(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	// Verify once from A1/D1, then complete a full login from A2/D2.
	code, _, _ := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); err != nil {
		t.Fatalf("consumption failed: %v", err)
	}

	code, anomaly, _ := g.RequestLogin(ctx, "a@x.com", "2.2.2.2", "safari-ios")
	if !anomaly {
		t.Fatal("new address/device not flagged")
	}
	if err := g.ConsumeCode(ctx, "a@x.com", "2.2.2.2", "safari-ios", code); err != nil {
		t.Fatalf("consumption failed: %v", err)
	}

	// One successful verification later the new pair is trusted.
	if _, anomaly, _ = g.RequestLogin(ctx, "a@x.com", "2.2.2.2", "safari-ios"); anomaly {
		t.Fatal("freshly verified address/device still flagged as anomalous")
	}
}

func TestConcurrentConsumeSingleWinner(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	code, _, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes, invalid := 0, 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrInvalidCode):
				invalid++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly 1 successful consumption, got %d", successes)
	}
	if invalid != workers-1 {
		t.Fatalf("expected %d ErrInvalidCode failures, got %d", workers-1, invalid)
	}
}

func TestGeneratedCodeShape(t *testing.T) {
	const draws = 5000
	firstDigits := make(map[byte]int)
	distinct := make(map[string]struct{})

	for i := 0; i < draws; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 characters", code)
		}
		for j := 0; j < len(code); j++ {
			if code[j] < '0' || code[j] > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
		n, _ := strconv.Atoi(code)
		if n < codeMin || n > codeMin+codeSpan-1 {
			t.Fatalf("code %q out of range", code)
		}
		firstDigits[code[0]]++
		distinct[code] = struct{}{}
	}

	// Coarse uniformity: every leading digit 1-9 shows up, and each bucket
	// stays within a generous band around draws/9.
	for d := byte('1'); d <= '9'; d++ {
		count := firstDigits[d]
		if count == 0 {
			t.Fatalf("leading digit %c never drawn in %d draws", d, draws)
		}
		expected := draws / 9
		if count < expected/2 || count > expected*2 {
			t.Fatalf("leading digit %c drawn %d times, expected around %d", d, count, expected)
		}
	}
	if len(distinct) < draws/2 {
		t.Fatalf("only %d distinct codes out of %d draws", len(distinct), draws)
	}
}

func TestFullScenario(t *testing.T) {
	g, _ := newTestGuard()
	ctx := context.Background()

	code, anomaly, err := g.RequestLogin(ctx, "a@x.com", "1.1.1.1", "chrome-mac")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}
	if anomaly {
		t.Fatal("first login flagged as anomalous")
	}

	if err := g.ConsumeCode(ctx, "a@x.com", "1.1.1.1", "chrome-mac", code); err != nil {
		t.Fatalf("verification failed: %v", err)
	}

	_, anomaly, err = g.RequestLogin(ctx, "a@x.com", "9.9.9.9", "firefox-linux")
	if err != nil {
		t.Fatalf("RequestLogin failed: %v", err)
	}
	if !anomaly {
		t.Fatal("login from a new address and device not flagged as anomalous")
	}
}
