package postgres

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/common/errorz"
	"github.com/clubsphere/backend/internal/domain/dto"
	"github.com/clubsphere/backend/internal/domain/entity"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

// CreateWithAdmin provisions the club, its club_admin user and the linking
// membership in one transaction.
func (s *ClubRepository) CreateWithAdmin(ctx context.Context, club *entity.Club, admin *entity.User) (*entity.Club, error) {
	admin.Email = strings.ToLower(admin.Email)
	admin.Role = entity.ClubAdmin
	admin.IsActive = true

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var nameTaken int64
		if err := tx.Model(&entity.Club{}).Where("name = ?", club.Name).Count(&nameTaken).Error; err != nil {
			return err
		}
		if nameTaken > 0 {
			return errorz.ErrClubNameTaken
		}

		var emailTaken int64
		if err := tx.Model(&entity.User{}).Where("email = ?", admin.Email).Count(&emailTaken).Error; err != nil {
			return err
		}
		if emailTaken > 0 {
			return errorz.ErrEmailTaken
		}

		if club.CategoryID != nil {
			var categoryExists int64
			if err := tx.Model(&entity.Category{}).Where("id = ?", *club.CategoryID).Count(&categoryExists).Error; err != nil {
				return err
			}
			if categoryExists == 0 {
				return errorz.ErrCategoryNotFound
			}
		}

		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		if err := tx.Create(club).Error; err != nil {
			return err
		}

		return tx.Create(&entity.Membership{UserID: admin.ID, ClubID: club.ID}).Error
	})

	return club, err
}

func (s *ClubRepository) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).First(&club, "id = ?", id).Error
	return &club, err
}

// GetByAdmin returns the single club a club_admin account is linked to.
func (s *ClubRepository) GetByAdmin(ctx context.Context, adminUserID int64) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.club_id = clubs.id").
		Where("memberships.user_id = ?", adminUserID).
		First(&club).Error
	return &club, err
}

func (s *ClubRepository) GetAll(ctx context.Context) ([]dto.ClubInfo, error) {
	type rawClub struct {
		ID           string `gorm:"column:id"`
		Name         string `gorm:"column:name"`
		CategoryName string `gorm:"column:category_name"`
		MemberCount  int64  `gorm:"column:member_count"`
		AdvisorName  string `gorm:"column:advisor_name"`
	}

	var rawResult []rawClub
	err := s.db.WithContext(ctx).
		Table("clubs").
		Select(`clubs.id, clubs.name, categories.name AS category_name, clubs.advisor_name,
			(SELECT COUNT(*) FROM memberships WHERE memberships.club_id = clubs.id) AS member_count`).
		Joins("LEFT JOIN categories ON categories.id = clubs.category_id").
		Order("clubs.name").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.ClubInfo, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.ClubInfo{
			ID:           raw.ID,
			Name:         raw.Name,
			CategoryName: raw.CategoryName,
			MemberCount:  raw.MemberCount,
			AdvisorName:  raw.AdvisorName,
		}
	}

	return result, nil
}

func (s *ClubRepository) GetDetails(ctx context.Context, id string) (*dto.ClubDetails, error) {
	var club entity.Club
	if err := s.db.WithContext(ctx).First(&club, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var categoryName string
	if club.CategoryID != nil {
		var category entity.Category
		if err := s.db.WithContext(ctx).First(&category, "id = ?", *club.CategoryID).Error; err == nil {
			categoryName = category.Name
		}
	}

	var memberCount int64
	if err := s.db.WithContext(ctx).Model(&entity.Membership{}).Where("club_id = ?", id).Count(&memberCount).Error; err != nil {
		return nil, err
	}

	events := make([]entity.Event, 0)
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND start_time > ?", id, time.Now()).
		Order("start_time").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return &dto.ClubDetails{
		ID:           club.ID,
		Name:         club.Name,
		CategoryName: categoryName,
		Mission:      club.Mission,
		Vision:       club.Vision,
		Email:        club.Email,
		Phone:        club.Phone,
		AdvisorName:  club.AdvisorName,
		AdvisorEmail: club.AdvisorEmail,
		AdvisorPhone: club.AdvisorPhone,
		MemberCount:  memberCount,
		Events:       events,
	}, nil
}

func (s *ClubRepository) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(club).Error
	return club, err
}

// DeleteCascade removes every dependent record before the club row itself.
// The order follows the foreign-key relationships.
func (s *ClubRepository) DeleteCascade(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clubExists int64
		if err := tx.Model(&entity.Club{}).Where("id = ?", id).Count(&clubExists).Error; err != nil {
			return err
		}
		if clubExists == 0 {
			return errorz.ErrClubNotFound
		}

		if err := tx.Where("club_id = ?", id).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Announcement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Club{}, "id = ?", id).Error
	})
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (s *CategoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, 0)
	err := s.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}
