package handlers

import (
	"context"
	"errors"

	"github.com/animal-insights/pipelinectl/internal/reconcile"
)

// mockRunner is a scripted terraform runner.
type mockRunner struct {
	available  bool
	outputs    map[string]any
	outputsErr error
	rawOutputs map[string]string

	initErr    error
	planErr    error
	applyErr   error
	destroyErr error

	calls []string
}

func (m *mockRunner) Available() bool { return m.available }

func (m *mockRunner) Init(_ context.Context) error {
	m.calls = append(m.calls, "init")
	return m.initErr
}

func (m *mockRunner) Plan(_ context.Context) error {
	m.calls = append(m.calls, "plan")
	return m.planErr
}

func (m *mockRunner) Apply(_ context.Context) error {
	m.calls = append(m.calls, "apply")
	return m.applyErr
}

func (m *mockRunner) Destroy(_ context.Context) error {
	m.calls = append(m.calls, "destroy")
	return m.destroyErr
}

func (m *mockRunner) Outputs(_ context.Context) (map[string]any, error) {
	m.calls = append(m.calls, "outputs")
	return m.outputs, m.outputsErr
}

func (m *mockRunner) OutputRaw(_ context.Context, name string) (string, error) {
	m.calls = append(m.calls, "output:"+name)
	if v, ok := m.rawOutputs[name]; ok {
		return v, nil
	}
	return "", errors.New("output not found: " + name)
}

// mockStorage is a scripted storage client.
type mockStorage struct {
	checkErr    error
	emptied     []string
	emptyCount  int
	emptyErr    error
	bucketNames []string
	listErr     error
}

func (m *mockStorage) CheckBucket(_ context.Context, _ string) error { return m.checkErr }

func (m *mockStorage) Empty(_ context.Context, bucketName string) (int, error) {
	m.emptied = append(m.emptied, bucketName)
	return m.emptyCount, m.emptyErr
}

func (m *mockStorage) ListBucketNames(_ context.Context) ([]string, error) {
	return m.bucketNames, m.listErr
}

// mockHosting is a scripted hosting client.
type mockHosting struct {
	resources []reconcile.Resource
	listErr   error
	deleted   []string
	deleteErr error
}

func (m *mockHosting) ListHostingResources(_ context.Context) ([]reconcile.Resource, error) {
	return m.resources, m.listErr
}

func (m *mockHosting) DeleteResource(_ context.Context, r reconcile.Resource) error {
	m.deleted = append(m.deleted, string(r.Kind)+":"+r.Name)
	return m.deleteErr
}

// mockIdentity is a scripted identity client.
type mockIdentity struct {
	account string
	err     error
}

func (m *mockIdentity) Account(_ context.Context) (string, error) { return m.account, m.err }

// swapFactories installs mocks for the factory variables and returns a
// restore function for defer.
func swapFactories(r *mockRunner, s *mockStorage, h *mockHosting, id *mockIdentity) func() {
	origRunner := newTerraformRunner
	origStorage := newStorageClient
	origHosting := newHostingClient
	origIdentity := newIdentityClient

	newTerraformRunner = func(_ string) terraformRunner { return r }
	newStorageClient = func(_ context.Context, _ string) (storageClient, error) { return s, nil }
	newHostingClient = func(_ context.Context, _ string) (hostingClient, error) { return h, nil }
	newIdentityClient = func(_ context.Context, _ string) (identityClient, error) { return id, nil }

	return func() {
		newTerraformRunner = origRunner
		newStorageClient = origStorage
		newHostingClient = origHosting
		newIdentityClient = origIdentity
	}
}

// swapConfirm scripts the confirmation prompt with a fixed sequence of
// answers and returns a restore function.
func swapConfirm(answers ...bool) func() {
	orig := confirm
	i := 0
	confirm = func(_ context.Context, _, _ string) (bool, error) {
		if i >= len(answers) {
			return false, errors.New("unexpected confirmation prompt")
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	return func() { confirm = orig }
}
