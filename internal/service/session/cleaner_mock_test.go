package session

import (
	"sync"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

var _ recordCleaner = &recordCleanerMock{}

type recordCleanerMock struct {
	CleanFunc func(rec domain.FlashcardRecord) domain.FlashcardRecord

	calls struct {
		Clean []struct {
			Rec domain.FlashcardRecord
		}
	}
	lockClean sync.RWMutex
}

func (mock *recordCleanerMock) Clean(rec domain.FlashcardRecord) domain.FlashcardRecord {
	if mock.CleanFunc == nil {
		panic("recordCleanerMock.CleanFunc: method is nil but recordCleaner.Clean was just called")
	}
	callInfo := struct {
		Rec domain.FlashcardRecord
	}{Rec: rec}
	mock.lockClean.Lock()
	mock.calls.Clean = append(mock.calls.Clean, callInfo)
	mock.lockClean.Unlock()
	return mock.CleanFunc(rec)
}

func (mock *recordCleanerMock) CleanCalls() []struct {
	Rec domain.FlashcardRecord
} {
	mock.lockClean.RLock()
	calls := mock.calls.Clean
	mock.lockClean.RUnlock()
	return calls
}
