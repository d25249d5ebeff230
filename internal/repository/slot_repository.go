package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyplanner/internal/model"
)

// Slot kinds. Each kind holds one JSON-encoded record: an array for
// the entity collections, an object for settings.
const (
	SlotCourses  = "courses"
	SlotTasks    = "tasks"
	SlotExams    = "exams"
	SlotSettings = "settings"
)

var slotKinds = []string{SlotCourses, SlotTasks, SlotExams, SlotSettings}

// Slot is one named persisted record.
type Slot struct {
	Kind      string `gorm:"primaryKey"`
	Payload   string
	UpdatedAt time.Time
}

// SlotRepository stores the planner's four slots as key-value rows.
// Reads never fail from the caller's point of view: a missing or
// unreadable slot comes back as an empty collection or default
// settings, keeping consumers always renderable.
type SlotRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSlotRepository(db *gorm.DB, log *zap.Logger) *SlotRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlotRepository{db: db, log: log}
}

func (r *SlotRepository) save(kind string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	slot := Slot{Kind: kind, Payload: string(payload)}
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&slot).Error; err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

// load fills dest from the slot's payload. Absent rows and corrupt
// payloads leave dest untouched.
func (r *SlotRepository) load(kind string, dest any) {
	var slot Slot
	err := r.db.Where("kind = ?", kind).First(&slot).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("read slot", zap.String("kind", kind), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal([]byte(slot.Payload), dest); err != nil {
		r.log.Debug("corrupt slot payload, using defaults", zap.String("kind", kind), zap.Error(err))
	}
}

func (r *SlotRepository) SaveCourses(courses []model.Course) error {
	if courses == nil {
		courses = []model.Course{}
	}
	return r.save(SlotCourses, courses)
}

func (r *SlotRepository) GetCourses() []model.Course {
	courses := []model.Course{}
	r.load(SlotCourses, &courses)
	return courses
}

func (r *SlotRepository) SaveTasks(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return r.save(SlotTasks, tasks)
}

func (r *SlotRepository) GetTasks() []model.Task {
	tasks := []model.Task{}
	r.load(SlotTasks, &tasks)
	return tasks
}

func (r *SlotRepository) SaveExams(exams []model.Exam) error {
	if exams == nil {
		exams = []model.Exam{}
	}
	return r.save(SlotExams, exams)
}

func (r *SlotRepository) GetExams() []model.Exam {
	exams := []model.Exam{}
	r.load(SlotExams, &exams)
	return exams
}

func (r *SlotRepository) SaveSettings(settings model.Settings) error {
	return r.save(SlotSettings, settings)
}

// GetSettings overlays the persisted record on the defaults, so a
// partial record keeps default values for its missing fields.
func (r *SlotRepository) GetSettings() model.Settings {
	settings := model.DefaultSettings()
	var slot Slot
	err := r.db.Where("kind = ?", SlotSettings).First(&slot).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("read slot", zap.String("kind", SlotSettings), zap.Error(err))
		}
		return settings
	}
	if err := json.Unmarshal([]byte(slot.Payload), &settings); err != nil {
		r.log.Debug("corrupt settings payload, using defaults", zap.Error(err))
		return model.DefaultSettings()
	}
	return settings
}

// ResetAll removes all four slots in one transaction.
func (r *SlotRepository) ResetAll() error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("kind IN ?", slotKinds).Delete(&Slot{}).Error
	})
	if err != nil {
		return fmt.Errorf("reset slots: %w", err)
	}
	return nil
}
