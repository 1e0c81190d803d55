package tracker

import (
	"context"
	"sync"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
	"github.com/heartmarshall/myhealth-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// profileRepo mock
// ---------------------------------------------------------------------------

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	PutFunc func(ctx context.Context, p domain.Profile) error
	GetFunc func(ctx context.Context, userID domain.UserID) (*domain.Profile, error)

	calls struct {
		Put []struct {
			Ctx context.Context
			P   domain.Profile
		}
		Get []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
	}
	lockPut sync.RWMutex
	lockGet sync.RWMutex
}

func (mock *profileRepoMock) Put(ctx context.Context, p domain.Profile) error {
	if mock.PutFunc == nil {
		panic("profileRepoMock.PutFunc: method is nil but profileRepo.Put was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, p)
}

func (mock *profileRepoMock) PutCalls() []struct {
	Ctx context.Context
	P   domain.Profile
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *profileRepoMock) Get(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	if mock.GetFunc == nil {
		panic("profileRepoMock.GetFunc: method is nil but profileRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *profileRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// sessionRepo mock
// ---------------------------------------------------------------------------

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	PutFunc    func(ctx context.Context, s domain.SetupSession) error
	GetFunc    func(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error)
	DeleteFunc func(ctx context.Context, userID domain.UserID) error

	calls struct {
		Put []struct {
			Ctx context.Context
			S   domain.SetupSession
		}
		Get []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
		Delete []struct {
			Ctx    context.Context
			UserID domain.UserID
		}
	}
	lockPut    sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *sessionRepoMock) Put(ctx context.Context, s domain.SetupSession) error {
	if mock.PutFunc == nil {
		panic("sessionRepoMock.PutFunc: method is nil but sessionRepo.Put was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.SetupSession
	}{Ctx: ctx, S: s}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, s)
}

func (mock *sessionRepoMock) PutCalls() []struct {
	Ctx context.Context
	S   domain.SetupSession
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Get(ctx context.Context, userID domain.UserID) (*domain.SetupSession, error) {
	if mock.GetFunc == nil {
		panic("sessionRepoMock.GetFunc: method is nil but sessionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *sessionRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, userID domain.UserID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
	}{Ctx: ctx, UserID: userID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// dayLogRepo mock
// ---------------------------------------------------------------------------

var _ dayLogRepo = &dayLogRepoMock{}

type dayLogRepoMock struct {
	GetFunc           func(ctx context.Context, userID domain.UserID, date domain.Date) (*domain.DayLog, error)
	AddWaterFunc      func(ctx context.Context, userID domain.UserID, date domain.Date, amountML float64) (float64, error)
	AppendFoodFunc    func(ctx context.Context, userID domain.UserID, date domain.Date, entry domain.FoodEntry) (float64, error)
	AppendWorkoutFunc func(ctx context.Context, userID domain.UserID, date domain.Date, entry domain.WorkoutEntry) (float64, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID domain.UserID
			Date   domain.Date
		}
		AddWater []struct {
			Ctx      context.Context
			UserID   domain.UserID
			Date     domain.Date
			AmountML float64
		}
		AppendFood []struct {
			Ctx    context.Context
			UserID domain.UserID
			Date   domain.Date
			Entry  domain.FoodEntry
		}
		AppendWorkout []struct {
			Ctx    context.Context
			UserID domain.UserID
			Date   domain.Date
			Entry  domain.WorkoutEntry
		}
	}
	lockGet           sync.RWMutex
	lockAddWater      sync.RWMutex
	lockAppendFood    sync.RWMutex
	lockAppendWorkout sync.RWMutex
}

func (mock *dayLogRepoMock) Get(ctx context.Context, userID domain.UserID, date domain.Date) (*domain.DayLog, error) {
	if mock.GetFunc == nil {
		panic("dayLogRepoMock.GetFunc: method is nil but dayLogRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Date   domain.Date
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, date)
}

func (mock *dayLogRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Date   domain.Date
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *dayLogRepoMock) AddWater(ctx context.Context, userID domain.UserID, date domain.Date, amountML float64) (float64, error) {
	if mock.AddWaterFunc == nil {
		panic("dayLogRepoMock.AddWaterFunc: method is nil but dayLogRepo.AddWater was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   domain.UserID
		Date     domain.Date
		AmountML float64
	}{Ctx: ctx, UserID: userID, Date: date, AmountML: amountML}
	mock.lockAddWater.Lock()
	mock.calls.AddWater = append(mock.calls.AddWater, callInfo)
	mock.lockAddWater.Unlock()
	return mock.AddWaterFunc(ctx, userID, date, amountML)
}

func (mock *dayLogRepoMock) AddWaterCalls() []struct {
	Ctx      context.Context
	UserID   domain.UserID
	Date     domain.Date
	AmountML float64
} {
	mock.lockAddWater.RLock()
	calls := mock.calls.AddWater
	mock.lockAddWater.RUnlock()
	return calls
}

func (mock *dayLogRepoMock) AppendFood(ctx context.Context, userID domain.UserID, date domain.Date, entry domain.FoodEntry) (float64, error) {
	if mock.AppendFoodFunc == nil {
		panic("dayLogRepoMock.AppendFoodFunc: method is nil but dayLogRepo.AppendFood was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Date   domain.Date
		Entry  domain.FoodEntry
	}{Ctx: ctx, UserID: userID, Date: date, Entry: entry}
	mock.lockAppendFood.Lock()
	mock.calls.AppendFood = append(mock.calls.AppendFood, callInfo)
	mock.lockAppendFood.Unlock()
	return mock.AppendFoodFunc(ctx, userID, date, entry)
}

func (mock *dayLogRepoMock) AppendFoodCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Date   domain.Date
	Entry  domain.FoodEntry
} {
	mock.lockAppendFood.RLock()
	calls := mock.calls.AppendFood
	mock.lockAppendFood.RUnlock()
	return calls
}

func (mock *dayLogRepoMock) AppendWorkout(ctx context.Context, userID domain.UserID, date domain.Date, entry domain.WorkoutEntry) (float64, error) {
	if mock.AppendWorkoutFunc == nil {
		panic("dayLogRepoMock.AppendWorkoutFunc: method is nil but dayLogRepo.AppendWorkout was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID domain.UserID
		Date   domain.Date
		Entry  domain.WorkoutEntry
	}{Ctx: ctx, UserID: userID, Date: date, Entry: entry}
	mock.lockAppendWorkout.Lock()
	mock.calls.AppendWorkout = append(mock.calls.AppendWorkout, callInfo)
	mock.lockAppendWorkout.Unlock()
	return mock.AppendWorkoutFunc(ctx, userID, date, entry)
}

func (mock *dayLogRepoMock) AppendWorkoutCalls() []struct {
	Ctx    context.Context
	UserID domain.UserID
	Date   domain.Date
	Entry  domain.WorkoutEntry
} {
	mock.lockAppendWorkout.RLock()
	calls := mock.calls.AppendWorkout
	mock.lockAppendWorkout.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// weatherProvider mock
// ---------------------------------------------------------------------------

var _ weatherProvider = &weatherProviderMock{}

type weatherProviderMock struct {
	FetchTemperatureFunc func(ctx context.Context, city string) (*float64, error)

	calls struct {
		FetchTemperature []struct {
			Ctx  context.Context
			City string
		}
	}
	lockFetchTemperature sync.RWMutex
}

func (mock *weatherProviderMock) FetchTemperature(ctx context.Context, city string) (*float64, error) {
	if mock.FetchTemperatureFunc == nil {
		panic("weatherProviderMock.FetchTemperatureFunc: method is nil but weatherProvider.FetchTemperature was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		City string
	}{Ctx: ctx, City: city}
	mock.lockFetchTemperature.Lock()
	mock.calls.FetchTemperature = append(mock.calls.FetchTemperature, callInfo)
	mock.lockFetchTemperature.Unlock()
	return mock.FetchTemperatureFunc(ctx, city)
}

func (mock *weatherProviderMock) FetchTemperatureCalls() []struct {
	Ctx  context.Context
	City string
} {
	mock.lockFetchTemperature.RLock()
	calls := mock.calls.FetchTemperature
	mock.lockFetchTemperature.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// foodProvider mock
// ---------------------------------------------------------------------------

var _ foodProvider = &foodProviderMock{}

type foodProviderMock struct {
	FetchProductFunc func(ctx context.Context, query string) (*provider.FoodResult, error)

	calls struct {
		FetchProduct []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockFetchProduct sync.RWMutex
}

func (mock *foodProviderMock) FetchProduct(ctx context.Context, query string) (*provider.FoodResult, error) {
	if mock.FetchProductFunc == nil {
		panic("foodProviderMock.FetchProductFunc: method is nil but foodProvider.FetchProduct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockFetchProduct.Lock()
	mock.calls.FetchProduct = append(mock.calls.FetchProduct, callInfo)
	mock.lockFetchProduct.Unlock()
	return mock.FetchProductFunc(ctx, query)
}

func (mock *foodProviderMock) FetchProductCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockFetchProduct.RLock()
	calls := mock.calls.FetchProduct
	mock.lockFetchProduct.RUnlock()
	return calls
}
