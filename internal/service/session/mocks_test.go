package session

import (
	"context"
	"sync"

	"github.com/lexipenia/anki-russian-cards/internal/domain"
)

var (
	_ rootResolver = &rootResolverMock{}
	_ accentLookup = &accentLookupMock{}
	_ prompter     = &prompterMock{}
	_ CardWriter   = &cardWriterMock{}
)

type rootResolverMock struct {
	ResolveRootFunc         func(ctx context.Context, word string) domain.ResolvedWord
	SuggestTranslationsFunc func(ctx context.Context, word string) string

	calls struct {
		ResolveRoot []struct {
			Ctx  context.Context
			Word string
		}
		SuggestTranslations []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockResolveRoot         sync.RWMutex
	lockSuggestTranslations sync.RWMutex
}

func (mock *rootResolverMock) ResolveRoot(ctx context.Context, word string) domain.ResolvedWord {
	if mock.ResolveRootFunc == nil {
		panic("rootResolverMock.ResolveRootFunc: method is nil but rootResolver.ResolveRoot was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockResolveRoot.Lock()
	mock.calls.ResolveRoot = append(mock.calls.ResolveRoot, callInfo)
	mock.lockResolveRoot.Unlock()
	return mock.ResolveRootFunc(ctx, word)
}

func (mock *rootResolverMock) ResolveRootCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockResolveRoot.RLock()
	calls := mock.calls.ResolveRoot
	mock.lockResolveRoot.RUnlock()
	return calls
}

func (mock *rootResolverMock) SuggestTranslations(ctx context.Context, word string) string {
	if mock.SuggestTranslationsFunc == nil {
		panic("rootResolverMock.SuggestTranslationsFunc: method is nil but rootResolver.SuggestTranslations was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockSuggestTranslations.Lock()
	mock.calls.SuggestTranslations = append(mock.calls.SuggestTranslations, callInfo)
	mock.lockSuggestTranslations.Unlock()
	return mock.SuggestTranslationsFunc(ctx, word)
}

func (mock *rootResolverMock) SuggestTranslationsCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockSuggestTranslations.RLock()
	calls := mock.calls.SuggestTranslations
	mock.lockSuggestTranslations.RUnlock()
	return calls
}

type accentLookupMock struct {
	LookupAccentFunc func(ctx context.Context, word string) domain.AccentedForm

	calls struct {
		LookupAccent []struct {
			Ctx  context.Context
			Word string
		}
	}
	lockLookupAccent sync.RWMutex
}

func (mock *accentLookupMock) LookupAccent(ctx context.Context, word string) domain.AccentedForm {
	if mock.LookupAccentFunc == nil {
		panic("accentLookupMock.LookupAccentFunc: method is nil but accentLookup.LookupAccent was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word string
	}{Ctx: ctx, Word: word}
	mock.lockLookupAccent.Lock()
	mock.calls.LookupAccent = append(mock.calls.LookupAccent, callInfo)
	mock.lockLookupAccent.Unlock()
	return mock.LookupAccentFunc(ctx, word)
}

func (mock *accentLookupMock) LookupAccentCalls() []struct {
	Ctx  context.Context
	Word string
} {
	mock.lockLookupAccent.RLock()
	calls := mock.calls.LookupAccent
	mock.lockLookupAccent.RUnlock()
	return calls
}

type prompterMock struct {
	AskFunc func(ctx context.Context, prompt string) (string, error)
	SayFunc func(msg string)

	calls struct {
		Ask []struct {
			Ctx    context.Context
			Prompt string
		}
		Say []struct {
			Msg string
		}
	}
	lockAsk sync.RWMutex
	lockSay sync.RWMutex
}

func (mock *prompterMock) Ask(ctx context.Context, prompt string) (string, error) {
	if mock.AskFunc == nil {
		panic("prompterMock.AskFunc: method is nil but prompter.Ask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockAsk.Lock()
	mock.calls.Ask = append(mock.calls.Ask, callInfo)
	mock.lockAsk.Unlock()
	return mock.AskFunc(ctx, prompt)
}

func (mock *prompterMock) AskCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockAsk.RLock()
	calls := mock.calls.Ask
	mock.lockAsk.RUnlock()
	return calls
}

func (mock *prompterMock) Say(msg string) {
	if mock.SayFunc == nil {
		panic("prompterMock.SayFunc: method is nil but prompter.Say was just called")
	}
	callInfo := struct {
		Msg string
	}{Msg: msg}
	mock.lockSay.Lock()
	mock.calls.Say = append(mock.calls.Say, callInfo)
	mock.lockSay.Unlock()
	mock.SayFunc(msg)
}

func (mock *prompterMock) SayCalls() []struct {
	Msg string
} {
	mock.lockSay.RLock()
	calls := mock.calls.Say
	mock.lockSay.RUnlock()
	return calls
}

type cardWriterMock struct {
	AppendFunc func(ctx context.Context, card domain.StoredCard) error

	calls struct {
		Append []struct {
			Ctx  context.Context
			Card domain.StoredCard
		}
	}
	lockAppend sync.RWMutex
}

func (mock *cardWriterMock) Append(ctx context.Context, card domain.StoredCard) error {
	if mock.AppendFunc == nil {
		panic("cardWriterMock.AppendFunc: method is nil but CardWriter.Append was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.StoredCard
	}{Ctx: ctx, Card: card}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, card)
}

func (mock *cardWriterMock) AppendCalls() []struct {
	Ctx  context.Context
	Card domain.StoredCard
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
