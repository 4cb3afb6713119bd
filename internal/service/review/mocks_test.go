package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	GetDueByUserFunc         func(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.ReviewSchedule, error)
	InsertFunc               func(ctx context.Context, schedule domain.ReviewSchedule) error
	GetOrCreateForUpdateFunc func(ctx context.Context, userID, quizID, questionID uuid.UUID, now time.Time) (domain.ReviewSchedule, error)
	UpdateFunc               func(ctx context.Context, scheduleID uuid.UUID, params domain.ScheduleUpdateParams) (domain.ReviewSchedule, error)
	CountScheduledFunc       func(ctx context.Context, userID, quizID uuid.UUID, questionIDs []uuid.UUID) (int, error)

	calls struct {
		Insert []domain.ReviewSchedule
		Update []struct {
			ScheduleID uuid.UUID
			Params     domain.ScheduleUpdateParams
		}
	}
	lockInsert sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *scheduleRepoMock) GetDueByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.ReviewSchedule, error) {
	if mock.GetDueByUserFunc == nil {
		panic("scheduleRepoMock.GetDueByUserFunc: method is nil but scheduleRepo.GetDueByUser was just called")
	}
	return mock.GetDueByUserFunc(ctx, userID, now)
}

func (mock *scheduleRepoMock) Insert(ctx context.Context, schedule domain.ReviewSchedule) error {
	if mock.InsertFunc == nil {
		panic("scheduleRepoMock.InsertFunc: method is nil but scheduleRepo.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, schedule)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, schedule)
}

func (mock *scheduleRepoMock) InsertCalls() []domain.ReviewSchedule {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) GetOrCreateForUpdate(ctx context.Context, userID, quizID, questionID uuid.UUID, now time.Time) (domain.ReviewSchedule, error) {
	if mock.GetOrCreateForUpdateFunc == nil {
		panic("scheduleRepoMock.GetOrCreateForUpdateFunc: method is nil but scheduleRepo.GetOrCreateForUpdate was just called")
	}
	return mock.GetOrCreateForUpdateFunc(ctx, userID, quizID, questionID, now)
}

func (mock *scheduleRepoMock) Update(ctx context.Context, scheduleID uuid.UUID, params domain.ScheduleUpdateParams) (domain.ReviewSchedule, error) {
	if mock.UpdateFunc == nil {
		panic("scheduleRepoMock.UpdateFunc: method is nil but scheduleRepo.Update was just called")
	}
	callInfo := struct {
		ScheduleID uuid.UUID
		Params     domain.ScheduleUpdateParams
	}{ScheduleID: scheduleID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, scheduleID, params)
}

func (mock *scheduleRepoMock) UpdateCalls() []struct {
	ScheduleID uuid.UUID
	Params     domain.ScheduleUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scheduleRepoMock) CountScheduled(ctx context.Context, userID, quizID uuid.UUID, questionIDs []uuid.UUID) (int, error) {
	if mock.CountScheduledFunc == nil {
		panic("scheduleRepoMock.CountScheduledFunc: method is nil but scheduleRepo.CountScheduled was just called")
	}
	return mock.CountScheduledFunc(ctx, userID, quizID, questionIDs)
}

var _ questionStore = &questionStoreMock{}

type questionStoreMock struct {
	QuestionIDsFunc    func(ctx context.Context, quizID uuid.UUID) ([]uuid.UUID, error)
	QuestionsByIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Question, error)
	QuizTitlesFunc     func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

func (mock *questionStoreMock) QuestionIDs(ctx context.Context, quizID uuid.UUID) ([]uuid.UUID, error) {
	if mock.QuestionIDsFunc == nil {
		panic("questionStoreMock.QuestionIDsFunc: method is nil but questionStore.QuestionIDs was just called")
	}
	return mock.QuestionIDsFunc(ctx, quizID)
}

func (mock *questionStoreMock) QuestionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Question, error) {
	if mock.QuestionsByIDsFunc == nil {
		panic("questionStoreMock.QuestionsByIDsFunc: method is nil but questionStore.QuestionsByIDs was just called")
	}
	return mock.QuestionsByIDsFunc(ctx, ids)
}

func (mock *questionStoreMock) QuizTitles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if mock.QuizTitlesFunc == nil {
		panic("questionStoreMock.QuizTitlesFunc: method is nil but questionStore.QuizTitles was just called")
	}
	return mock.QuizTitlesFunc(ctx, ids)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, no transaction semantics.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
