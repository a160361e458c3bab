package resolver

import (
	"context"
	"sync"

	"github.com/lexipenia/anki-russian-cards/internal/provider"
)

var _ translator = &translatorMock{}

type translatorMock struct {
	FetchStructuredFunc func(ctx context.Context, word string) (provider.TranslationBundle, error)
	FetchRawFunc        func(ctx context.Context, word string) (provider.RawLookup, error)

	calls struct {
		FetchStructured []struct {
			Ctx  context.Context
			Word string
		}
		FetchRaw []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockFetchStructured sync.RWMutex
	lockFetchRaw        sync.RWMutex
}

func (mock *translatorMock) FetchStructured(ctx context.Context, word string) (provider.TranslationBundle, error) {
	if mock.FetchStructuredFunc == nil {
		panic("translatorMock.FetchStructuredFunc: method is nil but translator.FetchStructured was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockFetchStructured.Lock()
	mock.calls.FetchStructured = append(mock.calls.FetchStructured, callInfo)
	mock.lockFetchStructured.Unlock()
	return mock.FetchStructuredFunc(ctx, word)
}

func (mock *translatorMock) FetchStructuredCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockFetchStructured.RLock()
	calls := mock.calls.FetchStructured
	mock.lockFetchStructured.RUnlock()
	return calls
}

func (mock *translatorMock) FetchRaw(ctx context.Context, word string) (provider.RawLookup, error) {
	if mock.FetchRawFunc == nil {
		panic("translatorMock.FetchRawFunc: method is nil but translator.FetchRaw was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockFetchRaw.Lock()
	mock.calls.FetchRaw = append(mock.calls.FetchRaw, callInfo)
	mock.lockFetchRaw.Unlock()
	return mock.FetchRawFunc(ctx, word)
}

func (mock *translatorMock) FetchRawCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockFetchRaw.RLock()
	calls := mock.calls.FetchRaw
	mock.lockFetchRaw.RUnlock()
	return calls
}
