package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
)

// CreateRequest stores a new help request and dispatches a notification to
// every shop within the configured radius. Dispatch runs once, right after
// the insert; a shop that cannot be notified is logged and skipped so one
// bad delivery never blocks the others.
func (uc *EmergencyUC) CreateRequest(ctx context.Context, principal *models.Principal, input models.CreateHelpRequestInput) (*models.HelpRequest, error) {
	if !principal.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers create help requests", apperrors.ErrForbidden)
	}
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title", "required")
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, apperrors.NewValidationError("location", "latitude and longitude are required")
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, apperrors.NewValidationError("priority", "must be LOW, MEDIUM or HIGH")
	}

	request := &models.HelpRequest{
		Title:       input.Title,
		Description: input.Description,
		Latitude:    *input.Latitude,
		Longitude:   *input.Longitude,
		Status:      models.RequestStatusPending,
		Priority:    priority,
		CustomerID:  principal.ID(),
		CreatedAt:   time.Now(),
	}
	if err := uc.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create help request: %w", err)
	}

	uc.dispatch(ctx, request)
	return request, nil
}

// dispatch notifies every shop within the dispatch radius of the request.
func (uc *EmergencyUC) dispatch(ctx context.Context, request *models.HelpRequest) {
	allShops, err := uc.shops.GetAllShops(ctx)
	if err != nil {
		uc.log.WithError(err).WithField("request_id", request.ID).
			Error("failed to load shops for dispatch")
		return
	}

	candidates := make([]utils.Candidate, 0, len(allShops))
	for _, shop := range allShops {
		candidate := utils.Candidate{ID: shop.ID}
		if loc, ok := shop.Coordinate(); ok {
			point := utils.GeoPointFromLocation(loc)
			candidate.Location = &point
		}
		candidates = append(candidates, candidate)
	}

	origin := utils.GeoPointFromLocation(request.Coordinate())
	matches := utils.WithinRadius(origin, uc.cfg.Emergency.DispatchRadiusKm, candidates)

	notified := 0
	for _, match := range matches {
		notification := models.EmergencyNotification{
			ID:         uuid.New().String(),
			RequestID:  request.ID,
			ShopID:     match.ID,
			Title:      request.Title,
			Priority:   request.Priority,
			Location:   request.Coordinate(),
			DistanceKm: match.DistanceKm,
			CreatedAt:  time.Now(),
		}
		if err := uc.notifier.NotifyShop(ctx, notification); err != nil {
			uc.log.WithError(err).WithFields(logrus.Fields{
				"request_id": request.ID,
				"shop_id":    match.ID,
			}).Error("failed to notify shop")
			continue
		}
		notified++
	}

	uc.log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"matched":    len(matches),
		"notified":   notified,
	}).Info("help request dispatched")
}

// GetRequest returns a single help request
func (uc *EmergencyUC) GetRequest(ctx context.Context, id int) (*models.HelpRequest, error) {
	return uc.requestRepo.GetRequestByID(ctx, id)
}

// ListRequests returns the requests visible to the caller: customers see
// their own, shops see the ones assigned to them.
func (uc *EmergencyUC) ListRequests(ctx context.Context, principal *models.Principal) ([]models.HelpRequest, error) {
	if principal.IsShop() {
		return uc.requestRepo.ListRequestsByShop(ctx, principal.ID())
	}
	return uc.requestRepo.ListRequestsByCustomer(ctx, principal.ID())
}

// ListPendingRequests returns every request still waiting for a shop
func (uc *EmergencyUC) ListPendingRequests(ctx context.Context) ([]models.HelpRequest, error) {
	return uc.requestRepo.ListRequestsByStatus(ctx, models.RequestStatusPending)
}

// NearbyRequests returns the pending requests within the dispatch radius
// of the calling shop.
func (uc *EmergencyUC) NearbyRequests(ctx context.Context, principal *models.Principal) ([]models.HelpRequest, error) {
	if !principal.IsShop() {
		return nil, fmt.Errorf("%w: only shops browse nearby requests", apperrors.ErrForbidden)
	}

	shop, err := uc.shops.GetShopByID(ctx, principal.ID())
	if err != nil {
		return nil, err
	}
	shopLoc, ok := shop.Coordinate()
	if !ok {
		return nil, apperrors.NewValidationError("location", "shop has no registered location")
	}

	pending, err := uc.requestRepo.ListRequestsByStatus(ctx, models.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.HelpRequest, len(pending))
	candidates := make([]utils.Candidate, 0, len(pending))
	for _, request := range pending {
		byID[request.ID] = request
		point := utils.GeoPointFromLocation(request.Coordinate())
		candidates = append(candidates, utils.Candidate{ID: request.ID, Location: &point})
	}

	origin := utils.GeoPointFromLocation(shopLoc)
	matches := utils.WithinRadius(origin, uc.cfg.Emergency.DispatchRadiusKm, candidates)

	nearby := make([]models.HelpRequest, 0, len(matches))
	for _, match := range matches {
		nearby = append(nearby, byID[match.ID])
	}
	return nearby, nil
}

// AcceptRequest assigns the calling shop to a pending request. Only a
// pending request can be accepted, and the stored version must still match
// the one the caller read.
func (uc *EmergencyUC) AcceptRequest(ctx context.Context, principal *models.Principal, id int) (*models.HelpRequest, error) {
	if !principal.IsShop() {
		return nil, fmt.Errorf("%w: only shops accept help requests", apperrors.ErrForbidden)
	}

	request, err := uc.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusPending {
		return nil, fmt.Errorf("%w: request is %s, only pending requests can be accepted",
			apperrors.ErrInvalidTransition, request.Status)
	}

	if err := uc.requestRepo.AcceptRequest(ctx, id, principal.ID(), request.Version); err != nil {
		return nil, err
	}

	return uc.requestRepo.GetRequestByID(ctx, id)
}

// CompleteRequest closes an accepted request. Only the shop that accepted
// it may complete it.
func (uc *EmergencyUC) CompleteRequest(ctx context.Context, principal *models.Principal, id int) (*models.HelpRequest, error) {
	if !principal.IsShop() {
		return nil, fmt.Errorf("%w: only shops complete help requests", apperrors.ErrForbidden)
	}

	request, err := uc.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusAccepted {
		return nil, fmt.Errorf("%w: request is %s, only accepted requests can be completed",
			apperrors.ErrInvalidTransition, request.Status)
	}
	if request.AssignedShopID == nil || *request.AssignedShopID != principal.ID() {
		return nil, fmt.Errorf("%w: request is assigned to another shop", apperrors.ErrForbidden)
	}

	if err := uc.requestRepo.CompleteRequest(ctx, id, request.Version); err != nil {
		return nil, err
	}

	return uc.requestRepo.GetRequestByID(ctx, id)
}
