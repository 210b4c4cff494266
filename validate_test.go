package recordval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordval"
)

// fakeValidator returns a canned error and captures what it was called with.
type fakeValidator struct {
	err    error
	called bool
	data   map[string]any
	rules  recordval.Rules
}

func (f *fakeValidator) Validate(ctx context.Context, data map[string]any, rules recordval.Rules) error {
	f.called = true
	f.data = data
	f.rules = rules
	return f.err
}

type testUser struct {
	recordval.Validating

	Email string
	rules recordval.RuleSet
}

func (u *testUser) ValidationRules() recordval.RuleSet {
	return u.rules
}

func (u *testUser) ValidationData() map[string]any {
	return map[string]any{"email": u.Email}
}

func rulesWithEmail() recordval.RuleSet {
	return recordval.RuleSet{
		Base: recordval.Rules{"email": {named("required")}},
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears previous failures", func(t *testing.T) {
		user := &testUser{Email: "dev@example.com", rules: rulesWithEmail()}
		failing := &fakeValidator{err: recordval.ValidationErrors{{Field: "email", Message: "is required"}}}

		require.Error(t, recordval.Validate(ctx, failing, user, recordval.OpCreate))
		require.True(t, user.IsInvalid())

		passing := &fakeValidator{}
		require.NoError(t, recordval.Validate(ctx, passing, user, recordval.OpCreate))
		assert.True(t, user.IsValid())
		assert.Nil(t, user.ValidationErrors())
	})

	t.Run("failure returns FailedError carrying the record", func(t *testing.T) {
		user := &testUser{Email: "", rules: rulesWithEmail()}
		v := &fakeValidator{err: recordval.ValidationErrors{{Field: "email", Rule: "required", Message: "is required"}}}

		err := recordval.Validate(ctx, v, user, recordval.OpCreate)
		require.Error(t, err)

		var failed *recordval.FailedError
		require.ErrorAs(t, err, &failed)
		assert.Same(t, user, failed.Record())
		assert.Equal(t, []string{"is required"}, failed.Errors().Get("email"))

		assert.True(t, user.IsInvalid())
		assert.Equal(t, "is required", user.ValidationErrors().First("email"))
	})

	t.Run("validator receives resolved rules and data", func(t *testing.T) {
		user := &testUser{
			Email: "dev@example.com",
			rules: recordval.RuleSet{
				Base:   recordval.Rules{"email": {named("required")}},
				Update: recordval.Rules{"email": {named("email")}},
			},
		}
		v := &fakeValidator{}

		require.NoError(t, recordval.Validate(ctx, v, user, recordval.OpUpdate))
		require.True(t, v.called)
		assert.Equal(t, map[string]any{"email": "dev@example.com"}, v.data)
		assert.Equal(t, []string{"email"}, directiveNames(v.rules["email"]))
	})

	t.Run("empty rules succeed without validator", func(t *testing.T) {
		user := &testUser{rules: recordval.RuleSet{}}

		assert.NoError(t, recordval.Validate(ctx, nil, user, recordval.OpCreate))
	})

	t.Run("nil validator with rules", func(t *testing.T) {
		user := &testUser{rules: rulesWithEmail()}

		err := recordval.Validate(ctx, nil, user, recordval.OpCreate)
		assert.ErrorIs(t, err, recordval.ErrNoValidator)
	})

	t.Run("nil record", func(t *testing.T) {
		err := recordval.Validate(ctx, &fakeValidator{}, nil, recordval.OpCreate)
		assert.ErrorIs(t, err, recordval.ErrNilRecord)
	})

	t.Run("infrastructure errors pass through", func(t *testing.T) {
		user := &testUser{rules: rulesWithEmail()}
		boom := errors.New("connection refused")
		v := &fakeValidator{err: boom}

		err := recordval.Validate(ctx, v, user, recordval.OpCreate)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, recordval.AsValidationErrors(err))
	})

	t.Run("skip flag does not affect direct validation", func(t *testing.T) {
		user := &testUser{rules: rulesWithEmail()}
		user.SkipValidation()
		v := &fakeValidator{err: recordval.ValidationErrors{{Field: "email", Message: "is required"}}}

		assert.Error(t, recordval.Validate(ctx, v, user, recordval.OpCreate))
	})
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("true on success", func(t *testing.T) {
		user := &testUser{Email: "dev@example.com", rules: rulesWithEmail()}
		assert.True(t, recordval.Check(ctx, &fakeValidator{}, user, recordval.OpCreate))
	})

	t.Run("false on failure", func(t *testing.T) {
		user := &testUser{rules: rulesWithEmail()}
		v := &fakeValidator{err: recordval.ValidationErrors{{Field: "email", Message: "is required"}}}
		assert.False(t, recordval.Check(ctx, v, user, recordval.OpCreate))
	})
}
