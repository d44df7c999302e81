package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"viewtube/internal/core/domain"
	"viewtube/internal/core/ports"
	apperrors "viewtube/pkg/errors"
)

type subscriptionService struct {
	users ports.UserRepository
}

func NewSubscriptionService(users ports.UserRepository) ports.SubscriptionService {
	return &subscriptionService{users: users}
}

// Toggle flips the actor's subscription to the channel. The relationship is
// written on both sides (channel.subscribers and actor.subscribed) as two
// independent single-document updates; a crash between them leaves the
// relationship asymmetric. Best-effort by design of the store: multi-document
// transactions are not assumed here.
func (s *subscriptionService) Toggle(ctx context.Context, actor primitive.ObjectID, channelID string) (bool, error) {
	id, err := parseID("channel", channelID)
	if err != nil {
		return false, err
	}

	channel, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, apperrors.NewNotFoundError("channel")
		}
		return false, err
	}

	subscribed := false
	for _, sub := range channel.Subscribers {
		if sub == actor {
			subscribed = true
			break
		}
	}

	if subscribed {
		if err := s.users.RemoveSubscriber(ctx, id, actor); err != nil {
			return false, err
		}
		if err := s.users.RemoveSubscription(ctx, actor, id); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.users.AddSubscriber(ctx, id, actor); err != nil {
		return false, err
	}
	if err := s.users.AddSubscription(ctx, actor, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelID string) ([]domain.Profile, error) {
	id, err := parseID("channel", channelID)
	if err != nil {
		return nil, err
	}

	channel, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("channel")
		}
		return nil, err
	}

	if len(channel.Subscribers) == 0 {
		return []domain.Profile{}, nil
	}
	return s.users.ProfilesByIDs(ctx, channel.Subscribers)
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, channelID string) ([]domain.Profile, error) {
	id, err := parseID("channel", channelID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, err
	}

	if len(user.Subscribed) == 0 {
		return []domain.Profile{}, nil
	}
	return s.users.ProfilesByIDs(ctx, user.Subscribed)
}
