package models

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project groups call sheets for one production. Call sheets reference it by
// id only; deleting a project leaves its call sheets in place.
type Project struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description"`
	Client      string        `json:"client"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (p Project) GetID() string           { return p.ID }
func (p Project) GetUpdatedAt() time.Time { return p.UpdatedAt }

type InsertProject struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Client      string        `json:"client"`
	Status      ProjectStatus `json:"status" binding:"omitempty,oneof=active paused completed"`
}

// ProjectPatch is a partial update; every field is independently optional.
type ProjectPatch struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Client      *string        `json:"client"`
	Status      *ProjectStatus `json:"status" binding:"omitempty,oneof=active paused completed"`
}

func NewProjectFromInsert(in InsertProject) Project {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = ProjectStatusActive
	}
	return Project{
		ID:          orNewID(in.ID),
		Name:        in.Name,
		Description: in.Description,
		Client:      in.Client,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p ProjectPatch) Changes() map[string]any {
	ch := map[string]any{"updated_at": time.Now().UTC()}
	if p.Name != nil {
		ch["name"] = *p.Name
	}
	if p.Description != nil {
		ch["description"] = *p.Description
	}
	if p.Client != nil {
		ch["client"] = *p.Client
	}
	if p.Status != nil {
		ch["status"] = *p.Status
	}
	return ch
}

func (p ProjectPatch) Apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Client != nil {
		pr.Client = *p.Client
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	pr.UpdatedAt = time.Now().UTC()
}
