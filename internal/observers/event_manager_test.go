package observers_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazakovdmitriy/go-idioms/internal/mocks"
	"github.com/kazakovdmitriy/go-idioms/internal/observers"
)

type recordingObserver struct {
	name  string
	calls *[]string
	err   error
}

func (r *recordingObserver) Update(eventType string, data map[string]any) error {
	*r.calls = append(*r.calls, r.name+":"+eventType+":"+data["username"].(string))
	return r.err
}

func TestEventManager_NotifyInAttachOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mocks.NewMockObserver(ctrl)
	b := mocks.NewMockObserver(ctrl)
	c := mocks.NewMockObserver(ctrl)
	data := map[string]any{"username": "x"}

	gomock.InOrder(
		a.EXPECT().Update("register", data).Return(nil),
		b.EXPECT().Update("register", data).Return(nil),
		c.EXPECT().Update("register", data).Return(nil),
	)

	manager := observers.NewEventManager()
	manager.Attach(a)
	manager.Attach(b)
	manager.Attach(c)

	err := manager.Notify("register", data)
	assert.NoError(t, err)
}

func TestEventManager_RegisterScenario(t *testing.T) {
	var calls []string
	manager := observers.NewEventManager()
	for _, name := range []string{"A", "B", "C"} {
		manager.Attach(&recordingObserver{name: name, calls: &calls})
	}

	err := manager.Notify(observers.EventRegister, map[string]any{"username": "x"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A:register:x", "B:register:x", "C:register:x"}, calls)
}

func TestEventManager_AttachDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().Update("register", gomock.Any()).Return(nil).Times(2)

	manager := observers.NewEventManager()
	manager.Attach(obs)
	manager.Attach(obs)

	assert.Equal(t, 2, manager.Len())
	assert.NoError(t, manager.Notify("register", map[string]any{"username": "x"}))
}

func TestEventManager_DetachRemovesFirstOccurrence(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "A", calls: &calls}
	b := &recordingObserver{name: "B", calls: &calls}

	manager := observers.NewEventManager()
	manager.Attach(a)
	manager.Attach(b)
	manager.Attach(a)

	require.NoError(t, manager.Detach(a))
	assert.Equal(t, 2, manager.Len())

	require.NoError(t, manager.Notify("register", map[string]any{"username": "x"}))
	assert.Equal(t, []string{"B:register:x", "A:register:x"}, calls)
}

func TestEventManager_DetachNotFound(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "A", calls: &calls}

	manager := observers.NewEventManager()
	err := manager.Detach(a)
	assert.ErrorIs(t, err, observers.ErrObserverNotFound)

	manager.Attach(a)
	require.NoError(t, manager.Detach(a))

	err = manager.Detach(a)
	assert.ErrorIs(t, err, observers.ErrObserverNotFound)
	assert.Equal(t, 0, manager.Len())
}

func TestEventManager_NotifyWithoutObservers(t *testing.T) {
	manager := observers.NewEventManager()

	assert.NoError(t, manager.Notify("register", map[string]any{"username": "x"}))
	assert.NoError(t, manager.Notify("anything", nil))
}

func TestEventManager_NotifyStopsOnFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	errBoom := errors.New("boom")
	a := mocks.NewMockObserver(ctrl)
	b := mocks.NewMockObserver(ctrl)
	c := mocks.NewMockObserver(ctrl)

	gomock.InOrder(
		a.EXPECT().Update("register", gomock.Any()).Return(nil),
		b.EXPECT().Update("register", gomock.Any()).Return(errBoom),
	)
	c.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	manager := observers.NewEventManager()
	manager.Attach(a)
	manager.Attach(b)
	manager.Attach(c)

	err := manager.Notify("register", map[string]any{"username": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "register")
}

type attachingObserver struct {
	manager *observers.EventManager
	next    observers.Observer
}

func (a *attachingObserver) Update(string, map[string]any) error {
	a.manager.Attach(a.next)
	return a.manager.Detach(a)
}

func TestEventManager_AttachFromUpdate(t *testing.T) {
	var calls []string
	manager := observers.NewEventManager()
	late := &recordingObserver{name: "late", calls: &calls}
	manager.Attach(&attachingObserver{manager: manager, next: late})

	require.NoError(t, manager.Notify("register", map[string]any{"username": "x"}))
	assert.Empty(t, calls)
	assert.Equal(t, 1, manager.Len())

	require.NoError(t, manager.Notify("register", map[string]any{"username": "y"}))
	assert.Equal(t, []string{"late:register:y"}, calls)
}

type observerFunc func(eventType string, data map[string]any) error

func (f observerFunc) Update(eventType string, data map[string]any) error {
	return f(eventType, data)
}

func TestEventManager_DetachUncomparableObserver(t *testing.T) {
	var calls []string
	fn := observerFunc(func(eventType string, _ map[string]any) error {
		calls = append(calls, "func:"+eventType)
		return nil
	})
	a := &recordingObserver{name: "A", calls: &calls}

	manager := observers.NewEventManager()
	manager.Attach(fn)
	manager.Attach(a)

	var err error
	assert.NotPanics(t, func() { err = manager.Detach(fn) })
	assert.ErrorIs(t, err, observers.ErrObserverNotFound)
	assert.Equal(t, 2, manager.Len())

	// сравнимый наблюдатель по-прежнему находится среди несравнимых
	require.NoError(t, manager.Detach(a))
	assert.Equal(t, 1, manager.Len())

	require.NoError(t, manager.Notify("register", map[string]any{"username": "x"}))
	assert.Equal(t, []string{"func:register"}, calls)
}
