package service

import (
	"context"

	"github.com/ajiang05/vibeCheck/internal/auth"
	repository "github.com/ajiang05/vibeCheck/internal/database/postgres"
	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/metrics"

	"github.com/sirupsen/logrus"
)

type ProfileState string

const (
	ProfileUnauthenticated ProfileState = "unauthenticated"
	ProfileLoading         ProfileState = "loading"
	ProfileReady           ProfileState = "ready"
)

// ProfileView is the profile screen state. Profile stays nil in the ready
// state when the row is missing or the fetch failed.
type ProfileView struct {
	State   ProfileState
	User    *entity.User
	Profile *entity.Profile
}

// NewProfileView derives the initial state from the authentication context.
func NewProfileView(session auth.Context) *ProfileView {
	switch {
	case session.Authenticated():
		return &ProfileView{State: ProfileLoading, User: session.User}
	case session.Loading:
		return &ProfileView{State: ProfileLoading}
	default:
		return &ProfileView{State: ProfileUnauthenticated}
	}
}

// NeedsFetch reports whether the view waits on a profile lookup.
func (v *ProfileView) NeedsFetch() bool {
	return v.State == ProfileLoading && v.User != nil
}

// complete moves loading to ready; other states are left alone.
func (v *ProfileView) complete(profile *entity.Profile) {
	if !v.NeedsFetch() {
		return
	}
	v.Profile = profile
	v.State = ProfileReady
}

type profileService struct {
	profileRepo repository.ProfileRepository
	metrics     *metrics.Metrics
}

func NewProfileService(profileRepo repository.ProfileRepository, m *metrics.Metrics) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		metrics:     m,
	}
}

// Open fetches the profile once for an authenticated context. The fetch is
// not retried; a failure is logged and looks like a missing row.
func (s *profileService) Open(ctx context.Context, session auth.Context) *ProfileView {
	view := NewProfileView(session)
	if !view.NeedsFetch() {
		return view
	}

	profile, err := s.profileRepo.GetByID(ctx, view.User.ID)
	switch {
	case err != nil:
		logrus.WithField("user_id", view.User.ID).WithError(err).Error("Error loading profile")
		s.metrics.ProfileFetched("error")
		profile = nil
	case profile == nil:
		s.metrics.ProfileFetched("missing")
	default:
		s.metrics.ProfileFetched("found")
	}

	view.complete(profile)
	return view
}
