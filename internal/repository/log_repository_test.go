package repository

import (
	"errors"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/util"
	"testing"
)

func TestLogRepositoryAppendAndList(t *testing.T) {
	repo := NewLogRepository(newTestDB(t))

	var first, second model.AnswerSet
	first[0] = 1
	second[17] = 1

	id1, err := repo.Append(&model.Log{UserID: 1, Inputs: model.EncodeAnswers(first), Prediction: "p1", Timestamp: "t1"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	id2, err := repo.Append(&model.Log{UserID: 1, Inputs: model.EncodeAnswers(second), Prediction: "p2", Timestamp: "t2"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := repo.Append(&model.Log{UserID: 2, Inputs: "[]", Prediction: "other"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id2 <= id1 {
		t.Fatalf("ids not monotonic: %d then %d", id1, id2)
	}

	logs, err := repo.ListForUser(1)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].ID != id2 || logs[1].ID != id1 {
		t.Fatalf("order = [%d %d], want newest first", logs[0].ID, logs[1].ID)
	}

	got, err := model.DecodeAnswers(logs[0].Inputs)
	if err != nil {
		t.Fatalf("DecodeAnswers: %v", err)
	}
	if got != second {
		t.Fatalf("answers = %v, want %v", got, second)
	}
}

func TestLogRepositoryListEmpty(t *testing.T) {
	repo := NewLogRepository(newTestDB(t))
	logs, err := repo.ListForUser(42)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if logs == nil || len(logs) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", logs)
	}
}

func TestLogRepositoryStorageUnavailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogRepository(db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.Close()

	if _, err := repo.Append(&model.Log{UserID: 1}); !errors.Is(err, util.ErrStorageUnavailable) {
		t.Fatalf("Append err = %v, want ErrStorageUnavailable", err)
	}
	if _, err := repo.ListForUser(1); !errors.Is(err, util.ErrStorageUnavailable) {
		t.Fatalf("ListForUser err = %v, want ErrStorageUnavailable", err)
	}
}
