package planner

import (
	"go.uber.org/zap"

	"studyplanner/internal/model"
)

// Store is the persistence boundary the planner writes through. Reads
// always succeed (absent or corrupt data comes back empty/default);
// writes may fail and the failure aborts the mutation.
type Store interface {
	SaveCourses([]model.Course) error
	GetCourses() []model.Course
	SaveTasks([]model.Task) error
	GetTasks() []model.Task
	SaveExams([]model.Exam) error
	GetExams() []model.Exam
	SaveSettings(model.Settings) error
	GetSettings() model.Settings
	ResetAll() error
}

// Planner owns the in-memory collections and keeps them consistent
// with the store: every mutation persists the full updated collection
// first and only then swaps the in-memory slice. On a store error the
// in-memory state is untouched. Single writer; readers see whole
// slices swapped atomically.
type Planner struct {
	store    Store
	log      *zap.Logger
	courses  []model.Course
	tasks    []model.Task
	exams    []model.Exam
	settings model.Settings
}

func New(store Store, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{
		store:    store,
		log:      log,
		courses:  []model.Course{},
		tasks:    []model.Task{},
		exams:    []model.Exam{},
		settings: model.DefaultSettings(),
	}
}

// Load populates the collections from the store. Called once at startup.
func (p *Planner) Load() {
	p.courses = p.store.GetCourses()
	p.tasks = p.store.GetTasks()
	p.exams = p.store.GetExams()
	p.settings = p.store.GetSettings()
	p.log.Info("planner loaded",
		zap.Int("courses", len(p.courses)),
		zap.Int("tasks", len(p.tasks)),
		zap.Int("exams", len(p.exams)))
}

func (p *Planner) Courses() []model.Course { return p.courses }

func (p *Planner) Tasks() []model.Task { return p.tasks }

func (p *Planner) Exams() []model.Exam { return p.exams }

func (p *Planner) Settings() model.Settings { return p.settings }

// CourseByID resolves a course reference. Dangling ids report ok=false
// and callers must treat that as "no course".
func (p *Planner) CourseByID(id string) (model.Course, bool) {
	for _, c := range p.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// SaveCourse replaces the course with the same id in place, or appends
// when the id is new. An empty id gets one assigned. Returns the
// updated collection.
func (p *Planner) SaveCourse(course model.Course) ([]model.Course, error) {
	if course.ID == "" {
		course.ID = model.NewID()
	}
	updated := make([]model.Course, len(p.courses))
	copy(updated, p.courses)
	replaced := false
	for i := range updated {
		if updated[i].ID == course.ID {
			updated[i] = course
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, course)
	}
	if err := p.store.SaveCourses(updated); err != nil {
		return p.courses, err
	}
	p.courses = updated
	p.log.Info("course saved", zap.String("id", course.ID), zap.String("name", course.Name))
	return p.courses, nil
}

// DeleteCourse removes a course by id. An unknown id is a no-op with
// no store write. No cascade: tasks and exams keep their courseId.
func (p *Planner) DeleteCourse(id string) ([]model.Course, error) {
	idx := -1
	for i := range p.courses {
		if p.courses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p.courses, nil
	}
	updated := make([]model.Course, 0, len(p.courses)-1)
	updated = append(updated, p.courses[:idx]...)
	updated = append(updated, p.courses[idx+1:]...)
	if err := p.store.SaveCourses(updated); err != nil {
		return p.courses, err
	}
	p.courses = updated
	p.log.Info("course deleted", zap.String("id", id))
	return p.courses, nil
}

// SaveTask replaces in place by id or appends; an empty id gets one
// assigned.
func (p *Planner) SaveTask(task model.Task) ([]model.Task, error) {
	if task.ID == "" {
		task.ID = model.NewID()
	}
	updated := make([]model.Task, len(p.tasks))
	copy(updated, p.tasks)
	replaced := false
	for i := range updated {
		if updated[i].ID == task.ID {
			updated[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, task)
	}
	if err := p.store.SaveTasks(updated); err != nil {
		return p.tasks, err
	}
	p.tasks = updated
	p.log.Info("task saved", zap.String("id", task.ID), zap.String("title", task.Title))
	return p.tasks, nil
}

// DeleteTask removes a task by id; unknown ids are a no-op.
func (p *Planner) DeleteTask(id string) ([]model.Task, error) {
	idx := -1
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p.tasks, nil
	}
	updated := make([]model.Task, 0, len(p.tasks)-1)
	updated = append(updated, p.tasks[:idx]...)
	updated = append(updated, p.tasks[idx+1:]...)
	if err := p.store.SaveTasks(updated); err != nil {
		return p.tasks, err
	}
	p.tasks = updated
	p.log.Info("task deleted", zap.String("id", id))
	return p.tasks, nil
}

// UpdateTaskStatus rewrites only the status field of the matching
// task. An unknown id is a no-op with no store write.
func (p *Planner) UpdateTaskStatus(id string, status model.TaskStatus) ([]model.Task, error) {
	idx := -1
	for i := range p.tasks {
		if p.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p.tasks, nil
	}
	updated := make([]model.Task, len(p.tasks))
	copy(updated, p.tasks)
	updated[idx].Status = status
	if err := p.store.SaveTasks(updated); err != nil {
		return p.tasks, err
	}
	p.tasks = updated
	p.log.Info("task status updated", zap.String("id", id), zap.String("status", string(status)))
	return p.tasks, nil
}

// SaveExam replaces in place by id or appends; an empty id gets one
// assigned.
func (p *Planner) SaveExam(exam model.Exam) ([]model.Exam, error) {
	if exam.ID == "" {
		exam.ID = model.NewID()
	}
	updated := make([]model.Exam, len(p.exams))
	copy(updated, p.exams)
	replaced := false
	for i := range updated {
		if updated[i].ID == exam.ID {
			updated[i] = exam
			replaced = true
			break
		}
	}
	if !replaced {
		updated = append(updated, exam)
	}
	if err := p.store.SaveExams(updated); err != nil {
		return p.exams, err
	}
	p.exams = updated
	p.log.Info("exam saved", zap.String("id", exam.ID))
	return p.exams, nil
}

// DeleteExam removes an exam by id; unknown ids are a no-op.
func (p *Planner) DeleteExam(id string) ([]model.Exam, error) {
	idx := -1
	for i := range p.exams {
		if p.exams[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p.exams, nil
	}
	updated := make([]model.Exam, 0, len(p.exams)-1)
	updated = append(updated, p.exams[:idx]...)
	updated = append(updated, p.exams[idx+1:]...)
	if err := p.store.SaveExams(updated); err != nil {
		return p.exams, err
	}
	p.exams = updated
	p.log.Info("exam deleted", zap.String("id", id))
	return p.exams, nil
}

// UpdateSettings replaces the settings record.
func (p *Planner) UpdateSettings(settings model.Settings) (model.Settings, error) {
	if err := p.store.SaveSettings(settings); err != nil {
		return p.settings, err
	}
	p.settings = settings
	p.log.Info("settings updated",
		zap.Bool("darkMode", settings.DarkMode),
		zap.Bool("reminders", settings.Reminders),
		zap.String("accentColor", settings.AccentColor))
	return p.settings, nil
}

// ResetAll clears the store and returns every collection to its
// default state.
func (p *Planner) ResetAll() error {
	if err := p.store.ResetAll(); err != nil {
		return err
	}
	p.courses = []model.Course{}
	p.tasks = []model.Task{}
	p.exams = []model.Exam{}
	p.settings = model.DefaultSettings()
	p.log.Info("all data reset")
	return nil
}
