package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/grachmannico95/fintrack-be/internal/ai"
	"github.com/grachmannico95/fintrack-be/internal/config"
	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/grachmannico95/fintrack-be/pkg/retry"
	"github.com/shopspring/decimal"
)

const (
	maxChatMessageLength = 1000

	advisorSystemPrompt = "You are a personal finance assistant inside a budgeting app. " +
		"Answer briefly and practically. Do not invent transactions the user has not shared."
)

type ChatRequest struct {
	Message        string
	History        []ai.Message
	IncludeContext bool
}

type ChatReply struct {
	Reply string `json:"reply"`
}

type AdvisorService interface {
	Chat(ctx context.Context, userID string, req ChatRequest) (*ChatReply, error)
}

type advisorService struct {
	completer    ai.Completer
	transactions domain.TransactionRepository
	cfg          config.AdvisorConfig
	logger       *logger.Logger
}

// NewAdvisorService builds the chatbot service. A nil completer leaves the
// advisor unavailable.
func NewAdvisorService(completer ai.Completer, transactions domain.TransactionRepository, cfg config.AdvisorConfig, log *logger.Logger) AdvisorService {
	return &advisorService{
		completer:    completer,
		transactions: transactions,
		cfg:          cfg,
		logger:       log,
	}
}

func (s *advisorService) Chat(ctx context.Context, userID string, req ChatRequest) (*ChatReply, error) {
	if err := validateChatRequest(req); err != nil {
		return nil, err
	}

	if s.completer == nil {
		return nil, domain.ErrAdvisorUnavailable
	}

	prompt := strings.TrimSpace(req.Message)
	if req.IncludeContext {
		summary, err := s.recentActivity(ctx, userID)
		if err != nil {
			return nil, err
		}
		prompt = summary + "\n\nQuestion: " + prompt
	}

	var reply string
	err := retry.Do(ctx, func() error {
		var err error
		reply, err = s.completer.Complete(ctx, advisorSystemPrompt, req.History, prompt)
		if err != nil {
			s.logger.Warn(ctx, "Advisor completion failed",
				"error", err,
			)
		}
		return err
	}, retry.WithMaxAttempts(s.cfg.MaxRetries), retry.WithBaseDelay(s.cfg.RetryDelay))
	if err != nil {
		s.logger.Error(ctx, "Advisor gave up",
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}

	return &ChatReply{Reply: reply}, nil
}

func validateChatRequest(req ChatRequest) error {
	length := utf8.RuneCountInString(strings.TrimSpace(req.Message))
	if length == 0 {
		return fmt.Errorf("%w: message cannot be empty", domain.ErrValidation)
	}
	if length > maxChatMessageLength {
		return fmt.Errorf("%w: message too long (max %d characters)", domain.ErrValidation, maxChatMessageLength)
	}

	for i, msg := range req.History {
		if msg.Role != ai.RoleUser && msg.Role != ai.RoleAssistant {
			return fmt.Errorf("%w: conversationHistory[%d] has unknown role %q", domain.ErrValidation, i, msg.Role)
		}
	}

	return nil
}

type currencyTotals struct {
	in  decimal.Decimal
	out decimal.Decimal
}

// recentActivity summarises the latest transactions of the user for the prompt.
func (s *advisorService) recentActivity(ctx context.Context, userID string) (string, error) {
	txs, _, err := s.transactions.ListTransactions(ctx, userID, domain.TransactionFilter{
		Page:    1,
		PerPage: s.cfg.ContextTransactions,
	})
	if err != nil {
		return "", fmt.Errorf("load advisor context: %w", err)
	}

	return SummarizeTransactions(txs), nil
}

// SummarizeTransactions renders per-currency IN and OUT totals, currencies sorted.
func SummarizeTransactions(txs []domain.Transaction) string {
	if len(txs) == 0 {
		return "The user has no recorded transactions yet."
	}

	totals := make(map[string]*currencyTotals)
	for _, tx := range txs {
		t, ok := totals[tx.Currency]
		if !ok {
			t = &currencyTotals{}
			totals[tx.Currency] = t
		}
		if tx.Type == domain.TransactionTypeIn {
			t.in = t.in.Add(tx.Amount)
		} else {
			t.out = t.out.Add(tx.Amount)
		}
	}

	currencies := make([]string, 0, len(totals))
	for c := range totals {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	var b strings.Builder
	fmt.Fprintf(&b, "Recent transactions of the user (%d):", len(txs))
	for _, c := range currencies {
		t := totals[c]
		fmt.Fprintf(&b, "\n- %s: total IN %s, total OUT %s", c, t.in.StringFixed(2), t.out.StringFixed(2))
	}

	return b.String()
}
