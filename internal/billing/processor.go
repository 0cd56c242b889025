// AngelaMos | 2026
// processor.go

package billing

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

type Subscription struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	ShortURL string `json:"short_url"`
}

// Processor creates subscriptions with a payment provider.
type Processor interface {
	CreateSubscription(
		ctx context.Context,
		planID, email string,
	) (*Subscription, error)
}

const (
	stubShortURL  = "https://rzp.io/i/mock_link"
	stubIDLength  = 9
	stubIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// StubProcessor answers with a synthetic subscription and never contacts
// the provider. It is the default until razorpay.live is enabled.
type StubProcessor struct{}

func NewStubProcessor() *StubProcessor {
	return &StubProcessor{}
}

func (p *StubProcessor) CreateSubscription(
	_ context.Context,
	_, _ string,
) (*Subscription, error) {
	suffix, err := randomString(stubIDLength)
	if err != nil {
		return nil, fmt.Errorf("stub subscription id: %w", err)
	}

	return &Subscription{
		ID:       "sub_" + suffix,
		Status:   "created",
		ShortURL: stubShortURL,
	}, nil
}

func randomString(n int) (string, error) {
	out := make([]byte, n)
	limit := big.NewInt(int64(len(stubIDCharset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = stubIDCharset[idx.Int64()]
	}
	return string(out), nil
}

var (
	_ Processor = (*StubProcessor)(nil)
	_ Processor = (*RazorpayClient)(nil)
)
