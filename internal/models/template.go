package models

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateData is the partial call-sheet payload a template pre-populates a
// new call sheet with.
type TemplateData struct {
	ProductionTitle string       `json:"productionTitle,omitempty"`
	Producer        string       `json:"producer,omitempty"`
	Director        string       `json:"director,omitempty"`
	Client          string       `json:"client,omitempty"`
	Attachments     []Attachment `json:"attachments"`
	Locations       []Location   `json:"locations"`
	Scenes          []Scene      `json:"scenes"`
	Contacts        []Contact    `json:"contacts"`
	CrewCallTimes   []CallTime   `json:"crewCallTimes"`
	CastCallTimes   []CallTime   `json:"castCallTimes"`
	GeneralNotes    string       `json:"generalNotes"`
}

func (d TemplateData) normalized() TemplateData {
	d.Attachments = emptyIfNil(d.Attachments)
	d.Locations = emptyIfNil(d.Locations)
	d.Scenes = emptyIfNil(d.Scenes)
	d.Contacts = emptyIfNil(d.Contacts)
	d.CrewCallTimes = emptyIfNil(d.CrewCallTimes)
	d.CastCallTimes = emptyIfNil(d.CastCallTimes)
	return d
}

type Template struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null" json:"category"`
	// Default templates are protected from deletion by UI convention only;
	// the data model does not enforce it.
	IsDefault    bool                             `gorm:"not null;default:false" json:"isDefault"`
	TemplateData datatypes.JSONType[TemplateData] `json:"templateData"`
	CreatedAt    time.Time                        `json:"createdAt"`
	UpdatedAt    time.Time                        `json:"updatedAt"`
}

func (t Template) GetID() string           { return t.ID }
func (t Template) GetUpdatedAt() time.Time { return t.UpdatedAt }

type InsertTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	IsDefault   bool   `json:"isDefault"`
	// Pointer so that a present-but-empty payload still satisfies required.
	TemplateData *TemplateData `json:"templateData" binding:"required"`
}

type TemplatePatch struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Category     *string       `json:"category"`
	IsDefault    *bool         `json:"isDefault"`
	TemplateData *TemplateData `json:"templateData"`
}

func NewTemplateFromInsert(in InsertTemplate) Template {
	now := time.Now().UTC()
	var data TemplateData
	if in.TemplateData != nil {
		data = in.TemplateData.normalized()
	}
	return Template{
		ID:           orNewID(in.ID),
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		IsDefault:    in.IsDefault,
		TemplateData: datatypes.NewJSONType(data),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p TemplatePatch) Changes() map[string]any {
	ch := map[string]any{"updated_at": time.Now().UTC()}
	if p.Name != nil {
		ch["name"] = *p.Name
	}
	if p.Description != nil {
		ch["description"] = *p.Description
	}
	if p.Category != nil {
		ch["category"] = *p.Category
	}
	if p.IsDefault != nil {
		ch["is_default"] = *p.IsDefault
	}
	if p.TemplateData != nil {
		ch["template_data"] = datatypes.NewJSONType(p.TemplateData.normalized())
	}
	return ch
}

func (p TemplatePatch) Apply(t *Template) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.IsDefault != nil {
		t.IsDefault = *p.IsDefault
	}
	if p.TemplateData != nil {
		t.TemplateData = datatypes.NewJSONType(p.TemplateData.normalized())
	}
	t.UpdatedAt = time.Now().UTC()
}
