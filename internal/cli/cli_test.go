package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/health"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[string]*model.User
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Register(_ context.Context, in model.NewUser) (*model.User, error) {
	u := &model.User{ID: int64(len(f.users) + 1), Name: in.Name, Email: in.Email, Password: "hashed"}
	f.users[in.Email] = u
	return u, nil
}

func (f *fakeUsers) Authenticate(_ context.Context, creds model.Credentials) (*model.User, error) {
	if u, ok := f.users[creds.Email]; ok && creds.Password == "password1" {
		return u, nil
	}
	return nil, errs.NewUnauthorizedError("Invalid email or password", true)
}

type fakeReservations struct {
	gotLimit int
}

func (f *fakeReservations) ListForGuest(_ context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	f.gotLimit = limit
	return []model.GuestReservation{{
		Reservation:   model.Reservation{ID: 1, GuestID: guestID, StartDate: time.Date(2018, 9, 11, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2018, 9, 26, 0, 0, 0, 0, time.UTC)},
		Property:      model.Property{ID: 2, Title: "Blank corner", City: "Bohbatev", CostPerNight: 85234},
		AverageRating: 4.25,
	}}, nil
}

type fakeProperties struct {
	gotFilter model.PropertyFilter
	gotLimit  int
	created   *model.NewProperty
	deadline  bool
}

func (f *fakeProperties) Search(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.PropertySearchResult, error) {
	_, f.deadline = ctx.Deadline()
	f.gotFilter, f.gotLimit = filter, limit
	return []model.PropertySearchResult{{
		Property:      model.Property{ID: 1, OwnerID: 3, Title: "Habit mix", City: "Vancouver", CostPerNight: 9000, NumberOfBedrooms: 3},
		AverageRating: 4.2,
	}}, nil
}

func (f *fakeProperties) Create(_ context.Context, in model.NewProperty) (*model.Property, error) {
	f.created = &in
	return &model.Property{ID: 10, OwnerID: in.OwnerID, Title: in.Title, City: in.City, CostPerNight: in.CostPerNight}, nil
}

type fakeHealth struct {
	err string
}

func (f *fakeHealth) Check(_ context.Context) health.Report {
	check := health.Check{Status: health.StatusHealthy, ResponseTime: "1ms"}
	status := health.StatusHealthy
	if f.err != "" {
		check = health.Check{Status: health.StatusUnhealthy, ResponseTime: "5s", Error: f.err}
		status = health.StatusUnhealthy
	}
	return health.Report{Status: status, Environment: "test", Checks: map[string]health.Check{"database": check}}
}

type harness struct {
	users        *fakeUsers
	reservations *fakeReservations
	properties   *fakeProperties
	health       *fakeHealth
	opened       int
	closed       int
	traced       []string
	traceErr     error
}

func newHarness() *harness {
	return &harness{
		users: &fakeUsers{users: map[string]*model.User{
			"ada@example.com": {ID: 1, Name: "Ada", Email: "ada@example.com", Password: "hashed"},
		}},
		reservations: &fakeReservations{},
		properties:   &fakeProperties{},
		health:       &fakeHealth{},
	}
}

func (h *harness) run(args ...string) (string, error) {
	cmd := NewRootCommand(func() (*Backend, error) {
		h.opened++
		return &Backend{
			Users:        h.users,
			Reservations: h.reservations,
			Properties:   h.properties,
			Health:       h.health,
			Trace: func(ctx context.Context, name string) (context.Context, func(error)) {
				h.traced = append(h.traced, name)
				return ctx, func(err error) { h.traceErr = err }
			},
			Close: func() error {
				h.closed++
				return nil
			},
		}, nil
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := Execute(context.Background(), cmd)
	return out.String(), err
}

func TestPropertiesSearch_Flags(t *testing.T) {
	h := newHarness()

	out, err := h.run("properties", "search", "--city", "Vancouver", "--min-rating", "4", "--limit", "5")

	require.NoError(t, err)
	require.NotNil(t, h.properties.gotFilter.City)
	assert.Equal(t, "Vancouver", *h.properties.gotFilter.City)
	assert.Equal(t, 4.0, *h.properties.gotFilter.MinimumRating)
	assert.Nil(t, h.properties.gotFilter.OwnerID)
	assert.Nil(t, h.properties.gotFilter.MinimumPricePerNight)
	assert.Nil(t, h.properties.gotFilter.MaximumPricePerNight)
	assert.Equal(t, 5, h.properties.gotLimit)
	assert.True(t, h.properties.deadline)
	assert.Contains(t, out, "Habit mix")
	assert.Contains(t, out, "$90.00")
	assert.Contains(t, out, "4.20")
	assert.Equal(t, 1, h.closed)
}

func TestPropertiesSearch_PriceRange(t *testing.T) {
	h := newHarness()

	_, err := h.run("properties", "search", "--min-price", "50", "--max-price", "150")

	require.NoError(t, err)
	assert.Equal(t, 50.0, *h.properties.gotFilter.MinimumPricePerNight)
	assert.Equal(t, 150.0, *h.properties.gotFilter.MaximumPricePerNight)
	assert.Nil(t, h.properties.gotFilter.City)
	assert.Equal(t, 0, h.properties.gotLimit)
}

func TestPropertiesSearch_JSON(t *testing.T) {
	h := newHarness()

	out, err := h.run("properties", "search", "-o", "json")

	require.NoError(t, err)
	var results []model.PropertySearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, int64(9000), results[0].CostPerNight)
	assert.Equal(t, 4.2, results[0].AverageRating)
}

func TestPropertiesCreate_PriceInCents(t *testing.T) {
	h := newHarness()

	out, err := h.run("properties", "create",
		"--owner", "3", "--title", "Habit mix", "--description", "Cosy", "--price", "93.61",
		"--street", "651 Nami Road", "--city", "Namsub", "--province", "Ontario",
		"--post-code", "83680", "--country", "Canada", "--bedrooms", "3")

	require.NoError(t, err)
	require.NotNil(t, h.properties.created)
	assert.Equal(t, int64(9361), h.properties.created.CostPerNight)
	assert.Equal(t, int32(3), h.properties.created.NumberOfBedrooms)
	assert.Contains(t, out, "created property 10")
}

func TestPropertiesCreate_MissingFlags(t *testing.T) {
	h := newHarness()

	_, err := h.run("properties", "create", "--title", "Habit mix")

	assert.Error(t, err)
	assert.Zero(t, h.opened)
}

func TestReservationsList(t *testing.T) {
	h := newHarness()

	out, err := h.run("reservations", "list", "--guest", "3")

	require.NoError(t, err)
	assert.Equal(t, 0, h.reservations.gotLimit)
	assert.Contains(t, out, "Blank corner")
	assert.Contains(t, out, "2018-09-11")
	assert.Contains(t, out, "$852.34")
}

func TestUsersGet(t *testing.T) {
	h := newHarness()

	out, err := h.run("users", "get", "--email", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "hashed")

	out, err = h.run("users", "get", "--id", "1", "-o", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "hashed")
	assert.Contains(t, out, `"email": "ada@example.com"`)
}

func TestUsersGet_NotFound(t *testing.T) {
	h := newHarness()

	_, err := h.run("users", "get", "--email", "nobody@example.com")

	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, 3, ExitCode(err))
	assert.Equal(t, 1, h.closed)
	assert.Equal(t, []string{"lightbnb users get"}, h.traced)
	assert.Same(t, err, h.traceErr)
}

func TestUsersGet_FlagRules(t *testing.T) {
	h := newHarness()

	_, err := h.run("users", "get")
	assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
	assert.Equal(t, 2, ExitCode(err))

	_, err = h.run("users", "get", "--email", "a@b.c", "--id", "1")
	assert.Equal(t, 2, ExitCode(err))

	assert.Zero(t, h.opened)
}

func TestUsageErrors_ExitInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing required flag", []string{"reservations", "list"}},
		{"unknown flag", []string{"properties", "search", "--colour", "red"}},
		{"bad flag value", []string{"reservations", "list", "--guest", "three"}},
		{"unexpected argument", []string{"properties", "search", "Vancouver"}},
		{"unknown command", []string{"bookings"}},
		{"bad output format", []string{"properties", "search", "-o", "yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()

			_, err := h.run(tt.args...)

			assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
			assert.Equal(t, 2, ExitCode(err))
			assert.Zero(t, h.opened)
		})
	}
}

func TestUsersCreateAndLogin(t *testing.T) {
	h := newHarness()

	out, err := h.run("users", "create", "--name", "Bob", "--email", "bob@example.com", "--password", "password1")
	require.NoError(t, err)
	assert.Contains(t, out, "created user 2")

	out, err = h.run("users", "login", "--email", "bob@example.com", "--password", "password1")
	require.NoError(t, err)
	assert.Contains(t, out, "authenticated bob@example.com")

	_, err = h.run("users", "login", "--email", "bob@example.com", "--password", "nope")
	assert.Equal(t, 5, ExitCode(err))
}

func TestRoot_InvalidOutput(t *testing.T) {
	h := newHarness()

	_, err := h.run("properties", "search", "-o", "yaml")

	assert.Error(t, err)
	assert.Zero(t, h.opened)
}

func TestRoot_OpenFailure(t *testing.T) {
	cmd := NewRootCommand(func() (*Backend, error) {
		return nil, errors.New("failed to ping database")
	})
	cmd.SetArgs([]string{"users", "get", "--id", "1"})
	cmd.SetOut(&bytes.Buffer{})

	err := Execute(context.Background(), cmd)

	assert.EqualError(t, err, "failed to ping database")
	assert.Equal(t, 1, ExitCode(err))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errs.NewInvalidError("Validation failed", true, nil, []errs.FieldError{
		{Field: "email", Error: "must be a valid email address"},
	}))

	assert.Contains(t, buf.String(), "Validation failed (INVALID)")
	assert.Contains(t, buf.String(), "email")
	assert.Contains(t, buf.String(), "must be a valid email address")

	buf.Reset()
	PrintError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(errs.NewInvalidError("x", false, nil, nil)))
	assert.Equal(t, 4, ExitCode(errs.NewConflictError("x", false, nil)))
	assert.Equal(t, 1, ExitCode(errs.NewInternalError()))
}

func TestHealth(t *testing.T) {
	h := newHarness()

	out, err := h.run("health")
	require.NoError(t, err)
	assert.Contains(t, out, "database")
	assert.Contains(t, out, "healthy")

	h.health.err = "connection refused"
	out, err = h.run("health", "-o", "json")
	assert.ErrorIs(t, err, errUnhealthy)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, out, `"error": "connection refused"`)
	assert.Equal(t, 2, h.closed)
}

func TestHealth_StartupFailure(t *testing.T) {
	cmd := NewRootCommand(func() (*Backend, error) {
		return nil, errors.New("failed to initialize database: failed to ping database: connection refused")
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"health", "-o", "json"})

	err := Execute(context.Background(), cmd)

	assert.ErrorIs(t, err, errUnhealthy)
	assert.Equal(t, 1, ExitCode(err))

	var report health.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, health.StatusUnhealthy, report.Status)
	assert.Contains(t, report.Checks["startup"].Error, "connection refused")
}
