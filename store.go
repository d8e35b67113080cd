// store.go implements the durable task record store on SQLite via gorm.
//
// The HTTP handlers, the background runner and the executor all go through
// this store. Status transitions are expressed as guarded UPDATEs so that the
// database, not process memory, arbitrates races between concurrent callers.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the gorm handle. All task and account persistence lives here.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (or creates) the SQLite database at path and migrates the
// schema.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}
	// SQLite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY under concurrent transitions.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Task{}, &Account{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// CreateTask inserts a new pending task with a freshly assigned ID and
// returns the persisted record. The task type is not validated against the
// registry here: resolution is deferred to execution.
func (s *Store) CreateTask(taskType, inputText string) (*Task, error) {
	now := time.Now()
	t := &Task{
		ID:        uuid.NewString(),
		TaskType:  taskType,
		InputText: inputText,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// GetTask returns a task by ID, or ErrTaskNotFound.
func (s *Store) GetTask(id string) (*Task, error) {
	var t Task
	err := s.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &t, nil
}

// ListTasks returns all tasks in insertion order.
func (s *Store) ListTasks() ([]Task, error) {
	var tasks []Task
	if err := s.db.Order("created_at, id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// MarkProcessing transitions a task from pending to processing. Returns
// false if the task is not currently pending. The guarded UPDATE makes the
// transition atomic with respect to concurrent execute calls on the same ID:
// exactly one caller observes true.
func (s *Store) MarkProcessing(id string) (bool, error) {
	res := s.db.Model(&Task{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":     StatusProcessing,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("mark processing %s: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// MarkCompleted transitions a task from processing to completed and stores
// the result. A task in any other state is left untouched.
func (s *Store) MarkCompleted(id, result string) error {
	now := time.Now()
	res := s.db.Model(&Task{}).
		Where("id = ? AND status = ?", id, StatusProcessing).
		Updates(map[string]any{
			"status":       StatusCompleted,
			"result_text":  result,
			"updated_at":   now,
			"completed_at": now,
		})
	if res.Error != nil {
		return fmt.Errorf("mark completed %s: %w", id, res.Error)
	}
	return nil
}

// MarkFailed transitions a task from processing to failed and stores the
// error message. A task in any other state is left untouched.
func (s *Store) MarkFailed(id, errMsg string) error {
	now := time.Now()
	res := s.db.Model(&Task{}).
		Where("id = ? AND status = ?", id, StatusProcessing).
		Updates(map[string]any{
			"status":       StatusFailed,
			"error_text":   errMsg,
			"updated_at":   now,
			"completed_at": now,
		})
	if res.Error != nil {
		return fmt.Errorf("mark failed %s: %w", id, res.Error)
	}
	return nil
}
