package models

import (
	"time"

	"gorm.io/datatypes"
)

type CallSheetStatus string

const (
	CallSheetStatusDraft     CallSheetStatus = "draft"
	CallSheetStatusFinalized CallSheetStatus = "finalized"
)

// Child records are owned by their call sheet and stored inline as JSON;
// they have no lifecycle of their own. Slice order is display order and the
// backend never re-sorts it.

type Location struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type Scene struct {
	ID            string `json:"id"`
	Number        string `json:"number"`
	Description   string `json:"description"`
	Cast          string `json:"cast"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
}

type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type CallTime struct {
	ID   string `json:"id"`
	Time string `json:"time"`
	// MemberID is a weak reference into team members; the member may have
	// been deleted since.
	MemberID string `json:"memberId,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// CallSheet is the daily production schedule document, the primary artifact
// of the system.
type CallSheet struct {
	ID string `gorm:"primaryKey" json:"id"`
	// ProjectID is a weak reference; the project may be deleted independently.
	ProjectID       string                          `json:"projectId,omitempty"`
	ProductionTitle string                          `gorm:"not null" json:"productionTitle"`
	ShootingDate    string                          `gorm:"not null" json:"shootingDate"`
	Producer        string                          `json:"producer,omitempty"`
	Director        string                          `json:"director,omitempty"`
	Client          string                          `json:"client,omitempty"`
	ScriptURL       string                          `json:"scriptUrl,omitempty"`
	ScriptName      string                          `json:"scriptName,omitempty"`
	Attachments     datatypes.JSONSlice[Attachment] `json:"attachments"`
	StartTime       string                          `json:"startTime,omitempty"`
	LunchBreakTime  string                          `json:"lunchBreakTime,omitempty"`
	EndTime         string                          `json:"endTime,omitempty"`
	Locations       datatypes.JSONSlice[Location]   `json:"locations"`
	Scenes          datatypes.JSONSlice[Scene]      `json:"scenes"`
	Contacts        datatypes.JSONSlice[Contact]    `json:"contacts"`
	CrewCallTimes   datatypes.JSONSlice[CallTime]   `json:"crewCallTimes"`
	CastCallTimes   datatypes.JSONSlice[CallTime]   `json:"castCallTimes"`
	GeneralNotes    string                          `json:"generalNotes"`
	Status          CallSheetStatus                 `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt       time.Time                       `json:"createdAt"`
	UpdatedAt       time.Time                       `json:"updatedAt"`
}

func (cs CallSheet) GetID() string           { return cs.ID }
func (cs CallSheet) GetUpdatedAt() time.Time { return cs.UpdatedAt }

type InsertCallSheet struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"projectId"`
	ProductionTitle string          `json:"productionTitle" binding:"required"`
	ShootingDate    string          `json:"shootingDate" binding:"required"`
	Producer        string          `json:"producer"`
	Director        string          `json:"director"`
	Client          string          `json:"client"`
	ScriptURL       string          `json:"scriptUrl"`
	ScriptName      string          `json:"scriptName"`
	Attachments     []Attachment    `json:"attachments"`
	StartTime       string          `json:"startTime"`
	LunchBreakTime  string          `json:"lunchBreakTime"`
	EndTime         string          `json:"endTime"`
	Locations       []Location      `json:"locations"`
	Scenes          []Scene         `json:"scenes"`
	Contacts        []Contact       `json:"contacts"`
	CrewCallTimes   []CallTime      `json:"crewCallTimes"`
	CastCallTimes   []CallTime      `json:"castCallTimes"`
	GeneralNotes    string          `json:"generalNotes"`
	Status          CallSheetStatus `json:"status" binding:"omitempty,oneof=draft finalized"`
}

// CallSheetPatch is a partial update; list fields use pointers so an absent
// list and an explicitly empty one stay distinguishable.
type CallSheetPatch struct {
	ProjectID       *string          `json:"projectId"`
	ProductionTitle *string          `json:"productionTitle"`
	ShootingDate    *string          `json:"shootingDate"`
	Producer        *string          `json:"producer"`
	Director        *string          `json:"director"`
	Client          *string          `json:"client"`
	ScriptURL       *string          `json:"scriptUrl"`
	ScriptName      *string          `json:"scriptName"`
	Attachments     *[]Attachment    `json:"attachments"`
	StartTime       *string          `json:"startTime"`
	LunchBreakTime  *string          `json:"lunchBreakTime"`
	EndTime         *string          `json:"endTime"`
	Locations       *[]Location      `json:"locations"`
	Scenes          *[]Scene         `json:"scenes"`
	Contacts        *[]Contact       `json:"contacts"`
	CrewCallTimes   *[]CallTime      `json:"crewCallTimes"`
	CastCallTimes   *[]CallTime      `json:"castCallTimes"`
	GeneralNotes    *string          `json:"generalNotes"`
	Status          *CallSheetStatus `json:"status" binding:"omitempty,oneof=draft finalized"`
}

func NewCallSheetFromInsert(in InsertCallSheet) CallSheet {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = CallSheetStatusDraft
	}
	return CallSheet{
		ID:              orNewID(in.ID),
		ProjectID:       in.ProjectID,
		ProductionTitle: in.ProductionTitle,
		ShootingDate:    in.ShootingDate,
		Producer:        in.Producer,
		Director:        in.Director,
		Client:          in.Client,
		ScriptURL:       in.ScriptURL,
		ScriptName:      in.ScriptName,
		Attachments:     emptyIfNil(in.Attachments),
		StartTime:       in.StartTime,
		LunchBreakTime:  in.LunchBreakTime,
		EndTime:         in.EndTime,
		Locations:       emptyIfNil(in.Locations),
		Scenes:          emptyIfNil(in.Scenes),
		Contacts:        emptyIfNil(in.Contacts),
		CrewCallTimes:   emptyIfNil(in.CrewCallTimes),
		CastCallTimes:   emptyIfNil(in.CastCallTimes),
		GeneralNotes:    in.GeneralNotes,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (p CallSheetPatch) Changes() map[string]any {
	ch := map[string]any{"updated_at": time.Now().UTC()}
	if p.ProjectID != nil {
		ch["project_id"] = *p.ProjectID
	}
	if p.ProductionTitle != nil {
		ch["production_title"] = *p.ProductionTitle
	}
	if p.ShootingDate != nil {
		ch["shooting_date"] = *p.ShootingDate
	}
	if p.Producer != nil {
		ch["producer"] = *p.Producer
	}
	if p.Director != nil {
		ch["director"] = *p.Director
	}
	if p.Client != nil {
		ch["client"] = *p.Client
	}
	if p.ScriptURL != nil {
		ch["script_url"] = *p.ScriptURL
	}
	if p.ScriptName != nil {
		ch["script_name"] = *p.ScriptName
	}
	if p.Attachments != nil {
		ch["attachments"] = datatypes.NewJSONSlice(*p.Attachments)
	}
	if p.StartTime != nil {
		ch["start_time"] = *p.StartTime
	}
	if p.LunchBreakTime != nil {
		ch["lunch_break_time"] = *p.LunchBreakTime
	}
	if p.EndTime != nil {
		ch["end_time"] = *p.EndTime
	}
	if p.Locations != nil {
		ch["locations"] = datatypes.NewJSONSlice(*p.Locations)
	}
	if p.Scenes != nil {
		ch["scenes"] = datatypes.NewJSONSlice(*p.Scenes)
	}
	if p.Contacts != nil {
		ch["contacts"] = datatypes.NewJSONSlice(*p.Contacts)
	}
	if p.CrewCallTimes != nil {
		ch["crew_call_times"] = datatypes.NewJSONSlice(*p.CrewCallTimes)
	}
	if p.CastCallTimes != nil {
		ch["cast_call_times"] = datatypes.NewJSONSlice(*p.CastCallTimes)
	}
	if p.GeneralNotes != nil {
		ch["general_notes"] = *p.GeneralNotes
	}
	if p.Status != nil {
		ch["status"] = *p.Status
	}
	return ch
}

func (p CallSheetPatch) Apply(cs *CallSheet) {
	if p.ProjectID != nil {
		cs.ProjectID = *p.ProjectID
	}
	if p.ProductionTitle != nil {
		cs.ProductionTitle = *p.ProductionTitle
	}
	if p.ShootingDate != nil {
		cs.ShootingDate = *p.ShootingDate
	}
	if p.Producer != nil {
		cs.Producer = *p.Producer
	}
	if p.Director != nil {
		cs.Director = *p.Director
	}
	if p.Client != nil {
		cs.Client = *p.Client
	}
	if p.ScriptURL != nil {
		cs.ScriptURL = *p.ScriptURL
	}
	if p.ScriptName != nil {
		cs.ScriptName = *p.ScriptName
	}
	if p.Attachments != nil {
		cs.Attachments = datatypes.NewJSONSlice(*p.Attachments)
	}
	if p.StartTime != nil {
		cs.StartTime = *p.StartTime
	}
	if p.LunchBreakTime != nil {
		cs.LunchBreakTime = *p.LunchBreakTime
	}
	if p.EndTime != nil {
		cs.EndTime = *p.EndTime
	}
	if p.Locations != nil {
		cs.Locations = datatypes.NewJSONSlice(*p.Locations)
	}
	if p.Scenes != nil {
		cs.Scenes = datatypes.NewJSONSlice(*p.Scenes)
	}
	if p.Contacts != nil {
		cs.Contacts = datatypes.NewJSONSlice(*p.Contacts)
	}
	if p.CrewCallTimes != nil {
		cs.CrewCallTimes = datatypes.NewJSONSlice(*p.CrewCallTimes)
	}
	if p.CastCallTimes != nil {
		cs.CastCallTimes = datatypes.NewJSONSlice(*p.CastCallTimes)
	}
	if p.GeneralNotes != nil {
		cs.GeneralNotes = *p.GeneralNotes
	}
	if p.Status != nil {
		cs.Status = *p.Status
	}
	cs.UpdatedAt = time.Now().UTC()
}
