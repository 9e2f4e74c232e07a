package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"arthos/internal/dto"
	"arthos/internal/models"
	"arthos/internal/repository"
	"arthos/internal/subscription"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSubscriptionNotFound     = errors.New("subscription not found")
	ErrInvalidBillingCycle      = errors.New("invalid billing cycle")
	ErrInvalidRenewalDate       = errors.New("invalid renewal date")
	ErrInvalidSourceTransaction = errors.New("invalid source transaction id")
)

const (
	renewalDateLayout         = "2006-01-02"
	upcomingRenewalWindowDays = 7
)

type SubscriptionService struct {
	subRepo  SubscriptionStore
	txRepo   TransactionStore
	detector *subscription.Detector
	logger   *zap.Logger

	now func() time.Time
}

func NewSubscriptionService(subRepo SubscriptionStore, txRepo TransactionStore, detector *subscription.Detector, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		subRepo:  subRepo,
		txRepo:   txRepo,
		detector: detector,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *SubscriptionService) Create(ctx context.Context, userID uuid.UUID, req *dto.SubscriptionCreateRequest) (*dto.SubscriptionResponse, error) {
	cycle := models.BillingCycle(req.BillingCycle)
	if !cycle.Valid() {
		return nil, ErrInvalidBillingCycle
	}

	renewalDate, err := time.Parse(renewalDateLayout, req.RenewalDate)
	if err != nil {
		return nil, ErrInvalidRenewalDate
	}

	now := s.now()
	sub := &models.Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Amount:       req.Amount,
		BillingCycle: cycle,
		Category:     req.Category,
		RenewalDate:  renewalDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.SourceTransactionID != "" {
		sourceID, err := uuid.Parse(req.SourceTransactionID)
		if err != nil {
			return nil, ErrInvalidSourceTransaction
		}
		sub.SourceTransactionID = &sourceID
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	resp := toSubscriptionResponse(sub)
	return &resp, nil
}

func (s *SubscriptionService) List(ctx context.Context, userID uuid.UUID, filter repository.SubscriptionFilter, limit, offset int) (*dto.SubscriptionListResponse, error) {
	subs, err := s.subRepo.ListByUser(ctx, userID, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.subRepo.CountByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		items = append(items, toSubscriptionResponse(sub))
	}

	return &dto.SubscriptionListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *SubscriptionService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	sub, err := s.subRepo.GetByID(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := toSubscriptionResponse(sub)
	return &resp, nil
}

func (s *SubscriptionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.SubscriptionUpdateRequest) (*dto.SubscriptionResponse, error) {
	sub, err := s.subRepo.GetByID(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Amount != nil {
		sub.Amount = *req.Amount
	}
	if req.BillingCycle != nil {
		cycle := models.BillingCycle(*req.BillingCycle)
		if !cycle.Valid() {
			return nil, ErrInvalidBillingCycle
		}
		sub.BillingCycle = cycle
	}
	if req.Category != nil {
		sub.Category = *req.Category
	}
	if req.RenewalDate != nil {
		renewalDate, err := time.Parse(renewalDateLayout, *req.RenewalDate)
		if err != nil {
			return nil, ErrInvalidRenewalDate
		}
		sub.RenewalDate = renewalDate
	}
	sub.UpdatedAt = s.now()

	if err := s.subRepo.Update(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	resp := toSubscriptionResponse(sub)
	return &resp, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.subRepo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSubscriptionNotFound
	}
	return err
}

// Summary reports the recurring spend burn rate and renewals due within the
// next week, soonest first.
func (s *SubscriptionService) Summary(ctx context.Context, userID uuid.UUID) (*dto.SubscriptionSummaryResponse, error) {
	subs, err := s.subRepo.ListByUser(ctx, userID, repository.SubscriptionFilter{}, 200, 0)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	resp := &dto.SubscriptionSummaryResponse{
		UpcomingRenewals: []dto.UpcomingRenewal{},
	}
	for _, sub := range subs {
		resp.MonthlyBurn += monthlyEquivalent(sub.Amount, sub.BillingCycle)
		resp.YearlyBurn += yearlyEquivalent(sub.Amount, sub.BillingCycle)

		renewal := time.Date(sub.RenewalDate.Year(), sub.RenewalDate.Month(), sub.RenewalDate.Day(), 0, 0, 0, 0, time.UTC)
		daysLeft := int(renewal.Sub(today).Hours() / 24)
		if daysLeft >= 0 && daysLeft <= upcomingRenewalWindowDays {
			resp.UpcomingRenewals = append(resp.UpcomingRenewals, dto.UpcomingRenewal{
				Name:        sub.Name,
				DaysLeft:    daysLeft,
				RenewalDate: sub.RenewalDate.Format(renewalDateLayout),
			})
		}
	}

	sort.SliceStable(resp.UpcomingRenewals, func(i, j int) bool {
		return resp.UpcomingRenewals[i].DaysLeft < resp.UpcomingRenewals[j].DaysLeft
	})

	return resp, nil
}

// Detect scans the user's stored transactions for recurring charges. Nothing
// is persisted; candidates are returned for the user to confirm.
func (s *SubscriptionService) Detect(ctx context.Context, userID uuid.UUID) (*dto.DetectSubscriptionsResponse, error) {
	transactions, err := s.txRepo.ListAllByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	input := make([]subscription.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		input = append(input, subscription.Transaction{
			ID:        tx.ID.String(),
			RawText:   tx.RawText,
			Merchant:  tx.MerchantName(),
			Category:  tx.Category,
			Amount:    tx.Amount,
			Timestamp: tx.Timestamp,
		})
	}

	candidates := s.detector.Detect(input)
	detected := make([]dto.DetectedSubscription, 0, len(candidates))
	for _, c := range candidates {
		detected = append(detected, dto.DetectedSubscription{
			Name:          c.Name,
			Amount:        c.Amount,
			BillingCycle:  string(c.Cycle),
			Category:      c.Category,
			Confidence:    c.Confidence,
			TransactionID: c.TransactionID,
			RenewalDate:   c.RenewalDate.Format(renewalDateLayout),
		})
	}

	s.logger.Info("Subscription detection finished",
		zap.String("user_id", userID.String()),
		zap.Int("scanned", len(transactions)),
		zap.Int("detected", len(detected)),
	)

	return &dto.DetectSubscriptionsResponse{
		Detected: detected,
		Scanned:  len(transactions),
	}, nil
}

func monthlyEquivalent(amount float64, cycle models.BillingCycle) float64 {
	switch cycle {
	case models.BillingYearly:
		return amount / 12
	case models.BillingQuarterly:
		return amount / 3
	default:
		return amount
	}
}

func yearlyEquivalent(amount float64, cycle models.BillingCycle) float64 {
	switch cycle {
	case models.BillingYearly:
		return amount
	case models.BillingQuarterly:
		return amount * 4
	default:
		return amount * 12
	}
}

func toSubscriptionResponse(sub *models.Subscription) dto.SubscriptionResponse {
	resp := dto.SubscriptionResponse{
		ID:                sub.ID.String(),
		Name:              sub.Name,
		Amount:            sub.Amount,
		BillingCycle:      string(sub.BillingCycle),
		Category:          sub.Category,
		RenewalDate:       sub.RenewalDate.Format(renewalDateLayout),
		MonthlyEquivalent: monthlyEquivalent(sub.Amount, sub.BillingCycle),
		CreatedAt:         sub.CreatedAt.Format(time.RFC3339),
	}
	if sub.SourceTransactionID != nil {
		resp.SourceTransactionID = sub.SourceTransactionID.String()
	}
	return resp
}
