package resolver

import (
	"context"
	"sync"
)

var _ prompter = &prompterMock{}

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
