package models

import "time"

type TeamMember struct {
	ID string `gorm:"primaryKey" json:"id"`
	// ProjectID is a weak reference; the project may be deleted independently.
	ProjectID string    `json:"projectId,omitempty"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m TeamMember) GetID() string           { return m.ID }
func (m TeamMember) GetUpdatedAt() time.Time { return m.UpdatedAt }

type InsertTeamMember struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type TeamMemberPatch struct {
	ProjectID *string `json:"projectId"`
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func NewTeamMemberFromInsert(in InsertTeamMember) TeamMember {
	now := time.Now().UTC()
	return TeamMember{
		ID:        orNewID(in.ID),
		ProjectID: in.ProjectID,
		Name:      in.Name,
		Role:      in.Role,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p TeamMemberPatch) Changes() map[string]any {
	ch := map[string]any{"updated_at": time.Now().UTC()}
	if p.ProjectID != nil {
		ch["project_id"] = *p.ProjectID
	}
	if p.Name != nil {
		ch["name"] = *p.Name
	}
	if p.Role != nil {
		ch["role"] = *p.Role
	}
	if p.Email != nil {
		ch["email"] = *p.Email
	}
	if p.Phone != nil {
		ch["phone"] = *p.Phone
	}
	return ch
}

func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.ProjectID != nil {
		m.ProjectID = *p.ProjectID
	}
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	m.UpdatedAt = time.Now().UTC()
}
