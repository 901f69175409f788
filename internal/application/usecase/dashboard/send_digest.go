// Package dashboard contains dashboard and reporting use cases.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/7LayerLabs/spendsignal2.0/internal/application/adapter"
	"github.com/7LayerLabs/spendsignal2.0/internal/application/usecase/insight"
	"github.com/7LayerLabs/spendsignal2.0/internal/domain/entity"
	domainerror "github.com/7LayerLabs/spendsignal2.0/internal/domain/error"
)

// digestPeriodDays is the lookback window for the digest.
const digestPeriodDays = 7

// SendDigestInput represents the input for a digest send.
type SendDigestInput struct {
	UserID uuid.UUID
	Now    time.Time // zero means time.Now
}

// SendDigestOutput represents the outcome of a digest send.
type SendDigestOutput struct {
	Sent     bool
	Headline *entity.SpendingInsight
}

// SendDigestUseCase emails the user a weekly summary: the headline insight
// plus their zone totals for the trailing week.
type SendDigestUseCase struct {
	userRepo           adapter.UserRepository
	transactionRepo    adapter.TransactionRepository
	categorizationRepo adapter.CategorizationRepository
	emailSender        adapter.EmailSender
}

// NewSendDigestUseCase creates a new SendDigestUseCase instance.
func NewSendDigestUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	categorizationRepo adapter.CategorizationRepository,
	emailSender adapter.EmailSender,
) *SendDigestUseCase {
	return &SendDigestUseCase{
		userRepo:           userRepo,
		transactionRepo:    transactionRepo,
		categorizationRepo: categorizationRepo,
		emailSender:        emailSender,
	}
}

// Execute builds and sends the digest.
func (uc *SendDigestUseCase) Execute(ctx context.Context, input SendDigestInput) (*SendDigestOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.DigestEnabled {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDigestDisabled,
			"user has opted out of digest emails",
			domainerror.ErrDigestDisabled,
		)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	start := now.AddDate(0, 0, -digestPeriodDays)

	transactions, err := uc.transactionRepo.ListByUserAndRange(ctx, input.UserID, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categorizations, err := uc.categorizationRepo.ListByUserAndRange(ctx, input.UserID, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list categorizations: %w", err)
	}

	totals := sumZoneTotals(transactions, categorizations)
	output := &SendDigestOutput{}
	if headline, ok := insight.Headline(transactions, categorizations, user.MonthlyIncome); ok {
		output.Headline = &headline
	}

	subject := fmt.Sprintf("Your week in spending, %s", now.Format("Jan 2"))
	body := digestBody(user.Name, totals, output.Headline)
	if err := uc.emailSender.Send(ctx, user.Email, subject, body); err != nil {
		return nil, fmt.Errorf("failed to send digest email: %w", err)
	}
	output.Sent = true

	return output, nil
}

func digestBody(name string, totals entity.ZoneTotals, headline *entity.SpendingInsight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Hi %s, here is your week.</h2>", name)
	if headline != nil {
		fmt.Fprintf(&b, "<h3>%s</h3><p>%s</p>", headline.Title, headline.Message)
		if headline.Impact != "" {
			fmt.Fprintf(&b, "<p><em>%s</em></p>", headline.Impact)
		}
	}
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Green: $%s across %d transactions</li>", totals.GreenTotal.StringFixed(2), totals.GreenCount)
	fmt.Fprintf(&b, "<li>Yellow: $%s across %d transactions</li>", totals.YellowTotal.StringFixed(2), totals.YellowCount)
	fmt.Fprintf(&b, "<li>Red: $%s across %d transactions</li>", totals.RedTotal.StringFixed(2), totals.RedCount)
	if totals.Uncounted > 0 {
		fmt.Fprintf(&b, "<li>%d transactions still need a zone</li>", totals.Uncounted)
	}
	b.WriteString("</ul>")
	return b.String()
}
