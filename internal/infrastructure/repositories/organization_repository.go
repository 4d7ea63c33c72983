package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// OrganizationRepositoryImpl implements domain.OrganizationRepository.
type OrganizationRepositoryImpl struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository.
func NewOrganizationRepository(db *gorm.DB) domain.OrganizationRepository {
	return &OrganizationRepositoryImpl{db: db}
}

// Create implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *domain.Organization) error {
	dbOrg := &DBOrganization{
		Name:    org.Name,
		CUIT:    org.CUIT,
		Address: org.Address,
		Email:   org.Email,
		Phone:   org.Phone,
	}
	if err := r.db.WithContext(ctx).Create(dbOrg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCUITTaken
		}
		return err
	}
	org.ID = dbOrg.ID
	return nil
}

// FindByID implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Organization, error) {
	var dbOrg DBOrganization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbOrg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}
	return orgToDomain(&dbOrg), nil
}

// List implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) List(ctx context.Context) ([]domain.Organization, error) {
	var dbOrgs []DBOrganization
	if err := r.db.WithContext(ctx).Order("name").Find(&dbOrgs).Error; err != nil {
		return nil, err
	}
	orgs := make([]domain.Organization, 0, len(dbOrgs))
	for i := range dbOrgs {
		orgs = append(orgs, *orgToDomain(&dbOrgs[i]))
	}
	return orgs, nil
}

// Update implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) Update(ctx context.Context, org *domain.Organization) error {
	res := r.db.WithContext(ctx).Model(&DBOrganization{}).Where("id = ?", org.ID).Updates(map[string]any{
		"name":    org.Name,
		"cuit":    org.CUIT,
		"address": org.Address,
		"email":   org.Email,
		"phone":   org.Phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

// Delete implements domain.OrganizationRepository (soft delete).
func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBOrganization{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

// ListContacts implements domain.OrganizationRepository
func (r *OrganizationRepositoryImpl) ListContacts(ctx context.Context, orgID uint) ([]domain.OrganizationContact, error) {
	var dbContacts []DBOrganizationContact
	err := r.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&dbContacts).Error
	if err != nil {
		return nil, err
	}
	contacts := make([]domain.OrganizationContact, 0, len(dbContacts))
	for i := range dbContacts {
		c := &dbContacts[i]
		contacts = append(contacts, domain.OrganizationContact{
			ID:             c.ID,
			UserID:         c.UserID,
			OrganizationID: c.OrganizationID,
			Name:           c.Name,
			Lastname:       c.Lastname,
			Position:       c.Position,
			Phone:          c.Phone,
			DeletedAt:      deletedAtPtr(c.DeletedAt),
		})
	}
	return contacts, nil
}

func orgToDomain(dbOrg *DBOrganization) *domain.Organization {
	return &domain.Organization{
		ID:        dbOrg.ID,
		Name:      dbOrg.Name,
		CUIT:      dbOrg.CUIT,
		Address:   dbOrg.Address,
		Email:     dbOrg.Email,
		Phone:     dbOrg.Phone,
		DeletedAt: deletedAtPtr(dbOrg.DeletedAt),
	}
}
