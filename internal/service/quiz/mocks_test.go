package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateFunc         func(ctx context.Context, q domain.Quiz) (domain.Quiz, error)
	GetByIDFunc        func(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error)
	ListFunc           func(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error)
	AddQuestionFunc    func(ctx context.Context, q domain.Question) (domain.Question, error)
	DeleteQuestionFunc func(ctx context.Context, quizID, questionID uuid.UUID) error

	calls struct {
		Create      []domain.Quiz
		AddQuestion []domain.Question
	}
	lockCreate      sync.RWMutex
	lockAddQuestion sync.RWMutex
}

func (mock *quizRepoMock) Create(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	if mock.CreateFunc == nil {
		panic("quizRepoMock.CreateFunc: method is nil but quizRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, q)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *quizRepoMock) CreateCalls() []domain.Quiz {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *quizRepoMock) GetByID(ctx context.Context, quizID uuid.UUID) (domain.Quiz, error) {
	if mock.GetByIDFunc == nil {
		panic("quizRepoMock.GetByIDFunc: method is nil but quizRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, quizID)
}

func (mock *quizRepoMock) List(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error) {
	if mock.ListFunc == nil {
		panic("quizRepoMock.ListFunc: method is nil but quizRepo.List was just called")
	}
	return mock.ListFunc(ctx, filter)
}

func (mock *quizRepoMock) AddQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	if mock.AddQuestionFunc == nil {
		panic("quizRepoMock.AddQuestionFunc: method is nil but quizRepo.AddQuestion was just called")
	}
	mock.lockAddQuestion.Lock()
	mock.calls.AddQuestion = append(mock.calls.AddQuestion, q)
	mock.lockAddQuestion.Unlock()
	return mock.AddQuestionFunc(ctx, q)
}

func (mock *quizRepoMock) AddQuestionCalls() []domain.Question {
	mock.lockAddQuestion.RLock()
	calls := mock.calls.AddQuestion
	mock.lockAddQuestion.RUnlock()
	return calls
}

func (mock *quizRepoMock) DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	if mock.DeleteQuestionFunc == nil {
		panic("quizRepoMock.DeleteQuestionFunc: method is nil but quizRepo.DeleteQuestion was just called")
	}
	return mock.DeleteQuestionFunc(ctx, quizID, questionID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID)
}

var _ scheduler = &schedulerMock{}

type schedulerMock struct {
	CreateInitialSchedulesFunc func(ctx context.Context, quizID uuid.UUID) error

	calls struct {
		CreateInitialSchedules []uuid.UUID
	}
	lockCreateInitialSchedules sync.RWMutex
}

func (mock *schedulerMock) CreateInitialSchedules(ctx context.Context, quizID uuid.UUID) error {
	if mock.CreateInitialSchedulesFunc == nil {
		panic("schedulerMock.CreateInitialSchedulesFunc: method is nil but scheduler.CreateInitialSchedules was just called")
	}
	mock.lockCreateInitialSchedules.Lock()
	mock.calls.CreateInitialSchedules = append(mock.calls.CreateInitialSchedules, quizID)
	mock.lockCreateInitialSchedules.Unlock()
	return mock.CreateInitialSchedulesFunc(ctx, quizID)
}

func (mock *schedulerMock) CreateInitialSchedulesCalls() []uuid.UUID {
	mock.lockCreateInitialSchedules.RLock()
	calls := mock.calls.CreateInitialSchedules
	mock.lockCreateInitialSchedules.RUnlock()
	return calls
}
