package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// OrganizationHandlers handles company CRUD and contact listings.
type OrganizationHandlers struct {
	orgRepo domain.OrganizationRepository
}

// NewOrganizationHandlers creates new organization handlers.
func NewOrganizationHandlers(orgRepo domain.OrganizationRepository) *OrganizationHandlers {
	return &OrganizationHandlers{orgRepo: orgRepo}
}

// OrganizationRequest carries organization fields for create and update.
type OrganizationRequest struct {
	Name    string `json:"name" binding:"required"`
	CUIT    string `json:"cuit" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
}

// Create handles POST /organizations.
func (h *OrganizationHandlers) Create(c *gin.Context) {
	var req OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	org := &domain.Organization{Name: req.Name, CUIT: req.CUIT, Address: req.Address, Email: req.Email, Phone: req.Phone}
	if err := h.orgRepo.Create(c.Request.Context(), org); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Empresa creada correctamente", org)
}

// Get handles GET /organizations/:id.
func (h *OrganizationHandlers) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	org, err := h.orgRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Empresa", org)
}

// List handles GET /organizations.
func (h *OrganizationHandlers) List(c *gin.Context) {
	orgs, err := h.orgRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de empresas", gin.H{"organizations": orgs})
}

// Update handles PUT /organizations/:id.
func (h *OrganizationHandlers) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	org := &domain.Organization{ID: id, Name: req.Name, CUIT: req.CUIT, Address: req.Address, Email: req.Email, Phone: req.Phone}
	if err := h.orgRepo.Update(c.Request.Context(), org); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Empresa actualizada correctamente", org)
}

// Delete handles DELETE /organizations/:id.
func (h *OrganizationHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.orgRepo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Empresa eliminada correctamente", nil)
}

// ListContacts handles GET /organizations/:id/contacts.
func (h *OrganizationHandlers) ListContacts(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	contacts, err := h.orgRepo.ListContacts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Listado de contactos", gin.H{"contacts": contacts})
}
