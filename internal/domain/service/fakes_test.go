package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/pkg/logger/types"

	"go.uber.org/zap"
)

func testLogger() *types.Logger {
	return types.NewLogger(zap.NewNop())
}

// In-memory repository fakes. They honor the same error contracts as the
// postgres adapters: gorm.ErrRecordNotFound for missing rows and the errorz
// sentinels the adapters map constraint violations to.

type fakeUserRepo struct {
	nextID   int64
	users    map[int64]*entity.User
	profiles map[int64]*entity.StudentProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[int64]*entity.User),
		profiles: make(map[int64]*entity.StudentProfile),
	}
}

func (r *fakeUserRepo) add(user entity.User, profile *entity.StudentProfile) *entity.User {
	r.nextID++
	user.ID = r.nextID
	user.Email = strings.ToLower(user.Email)
	r.users[user.ID] = &user
	if profile != nil {
		profile.UserID = user.ID
		r.profiles[user.ID] = profile
	}
	return r.users[user.ID]
}

func (r *fakeUserRepo) CreateStudent(_ context.Context, user *entity.User, profile *entity.StudentProfile) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(user.Email) {
			return nil, errorz.ErrEmailTaken
		}
	}
	for _, p := range r.profiles {
		if p.StudentNumber == profile.StudentNumber {
			return nil, errorz.ErrStudentNumberTaken
		}
	}
	created := r.add(*user, profile)
	*user = *created
	return created, nil
}

func (r *fakeUserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetProfile(_ context.Context, userID int64) (*entity.StudentProfile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, profile *entity.StudentProfile) (*entity.StudentProfile, error) {
	r.profiles[profile.UserID] = profile
	return profile, nil
}

func (r *fakeUserRepo) ListStudents(_ context.Context) ([]dto.StudentSummary, error) {
	return nil, nil
}

func (r *fakeUserRepo) DeleteCascade(_ context.Context, id int64) error {
	delete(r.users, id)
	delete(r.profiles, id)
	return nil
}

type fakeClubRepo struct {
	clubs   map[string]*entity.Club
	adminOf map[int64]string
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{
		clubs:   make(map[string]*entity.Club),
		adminOf: make(map[int64]string),
	}
}

func (r *fakeClubRepo) add(id, name string) *entity.Club {
	r.clubs[id] = &entity.Club{ID: id, Name: name}
	return r.clubs[id]
}

func (r *fakeClubRepo) CreateWithAdmin(_ context.Context, club *entity.Club, admin *entity.User) (*entity.Club, error) {
	r.clubs[club.ID] = club
	r.adminOf[admin.ID] = club.ID
	return club, nil
}

func (r *fakeClubRepo) Get(_ context.Context, id string) (*entity.Club, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return club, nil
}

func (r *fakeClubRepo) GetByAdmin(_ context.Context, adminUserID int64) (*entity.Club, error) {
	clubID, ok := r.adminOf[adminUserID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.clubs[clubID], nil
}

func (r *fakeClubRepo) GetAll(_ context.Context) ([]dto.ClubInfo, error) {
	return nil, nil
}

func (r *fakeClubRepo) GetDetails(_ context.Context, id string) (*dto.ClubDetails, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &dto.ClubDetails{ID: club.ID, Name: club.Name}, nil
}

func (r *fakeClubRepo) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	r.clubs[club.ID] = club
	return club, nil
}

func (r *fakeClubRepo) DeleteCascade(_ context.Context, id string) error {
	if _, ok := r.clubs[id]; !ok {
		return errorz.ErrClubNotFound
	}
	delete(r.clubs, id)
	return nil
}

type fakeMembershipRepo struct {
	members map[string]*entity.Membership
	roster  map[string][]dto.Member
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{
		members: make(map[string]*entity.Membership),
		roster:  make(map[string][]dto.Member),
	}
}

func membershipKey(userID int64, clubID string) string {
	return fmt.Sprintf("%d/%s", userID, clubID)
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	key := membershipKey(membership.UserID, membership.ClubID)
	if _, ok := r.members[key]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	membership.CreatedAt = time.Now()
	r.members[key] = membership
	return membership, nil
}

func (r *fakeMembershipRepo) Exists(_ context.Context, userID int64, clubID string) (bool, error) {
	_, ok := r.members[membershipKey(userID, clubID)]
	return ok, nil
}

func (r *fakeMembershipRepo) Delete(_ context.Context, userID int64, clubID string) error {
	delete(r.members, membershipKey(userID, clubID))
	return nil
}

func (r *fakeMembershipRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, m := range r.members {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMembershipRepo) MembersByClub(_ context.Context, clubID string) ([]dto.Member, error) {
	return r.roster[clubID], nil
}

type fakeApplicationRepo struct {
	nextID         int
	apps           map[string]*entity.Application
	membershipRepo *fakeMembershipRepo
}

func newFakeApplicationRepo(memberships *fakeMembershipRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:           make(map[string]*entity.Application),
		membershipRepo: memberships,
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *entity.Application) (*entity.Application, error) {
	for _, a := range r.apps {
		if a.UserID == application.UserID && a.ClubID == application.ClubID && a.Status == entity.ApplicationPending {
			return nil, errorz.ErrDuplicateApplication
		}
	}
	r.nextID++
	application.ID = fmt.Sprintf("application-%d", r.nextID)
	application.CreatedAt = time.Now()
	r.apps[application.ID] = application
	return application, nil
}

func (r *fakeApplicationRepo) Get(_ context.Context, id string) (*entity.Application, error) {
	application, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return application, nil
}

func (r *fakeApplicationRepo) Approve(ctx context.Context, id string) error {
	application, ok := r.apps[id]
	if !ok || application.Status != entity.ApplicationPending {
		return errorz.ErrAppNotProcessable
	}
	application.Status = entity.ApplicationApproved
	_, err := r.membershipRepo.Create(ctx, &entity.Membership{
		UserID: application.UserID,
		ClubID: application.ClubID,
	})
	return err
}

func (r *fakeApplicationRepo) Reject(_ context.Context, id string) error {
	application, ok := r.apps[id]
	if !ok || application.Status != entity.ApplicationPending {
		return errorz.ErrAppNotProcessable
	}
	application.Status = entity.ApplicationRejected
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) HasPending(_ context.Context, userID int64, clubID string) (bool, error) {
	for _, a := range r.apps {
		if a.UserID == userID && a.ClubID == clubID && a.Status == entity.ApplicationPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) PendingByClub(_ context.Context, clubID string) ([]dto.Applicant, error) {
	var applicants []dto.Applicant
	for _, a := range r.apps {
		if a.ClubID == clubID && a.Status == entity.ApplicationPending {
			applicants = append(applicants, dto.Applicant{
				ApplicationID: a.ID,
				UserID:        a.UserID,
				AppliedAt:     a.CreatedAt,
			})
		}
	}
	return applicants, nil
}

func (r *fakeApplicationRepo) GetByUser(_ context.Context, userID int64) ([]dto.StudentApplication, error) {
	var applications []dto.StudentApplication
	for _, a := range r.apps {
		if a.UserID == userID {
			applications = append(applications, dto.StudentApplication{
				ApplicationID: a.ID,
				ClubID:        a.ClubID,
				Status:        a.Status,
				AppliedAt:     a.CreatedAt,
			})
		}
	}
	return applications, nil
}

type fakeSessionRepo struct {
	nextToken int
	sessions  map[string]int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]int64)}
}

func (r *fakeSessionRepo) Create(_ context.Context, userID int64, _ time.Duration) (string, error) {
	r.nextToken++
	token := fmt.Sprintf("token-%d", r.nextToken)
	r.sessions[token] = userID
	return token, nil
}

func (r *fakeSessionRepo) Get(_ context.Context, token string) (int64, error) {
	return r.sessions[token], nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

type fakeEventRepo struct {
	events   map[string]*entity.Event
	upcoming map[int64]int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:   make(map[string]*entity.Event),
		upcoming: make(map[int64]int64),
	}
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	r.events[event.ID] = event
	return event, nil
}

func (r *fakeEventRepo) GetByClub(_ context.Context, clubID string) ([]entity.Event, error) {
	var events []entity.Event
	for _, e := range r.events {
		if e.ClubID == clubID {
			events = append(events, *e)
		}
	}
	return events, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id, clubID string) error {
	if e, ok := r.events[id]; ok && e.ClubID == clubID {
		delete(r.events, id)
	}
	return nil
}

func (r *fakeEventRepo) FeedForUser(_ context.Context, _ int64, _ bool) ([]dto.EventFeedItem, error) {
	return nil, nil
}

func (r *fakeEventRepo) CountUpcomingForUser(_ context.Context, userID int64) (int64, error) {
	return r.upcoming[userID], nil
}
