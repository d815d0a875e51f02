package employee

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/hrplane/employee-management/internal"
	"github.com/hrplane/employee-management/pkg/logger"
)

func TestEmployee(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Module Suite")
}

// In-memory repository keyed by id, mirroring the users table behavior
// including the unique email constraint.
type mockRepository struct {
	employees map[int64]*Employee
	nextID    int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		employees: make(map[int64]*Employee),
		nextID:    1,
	}
}

func (m *mockRepository) Create(e *Employee) error {
	for _, existing := range m.employees {
		if existing.Email == e.Email {
			return ErrEmailAlreadyRegistered
		}
	}
	e.ID = m.nextID
	m.nextID++
	copied := *e
	m.employees[e.ID] = &copied
	return nil
}

func (m *mockRepository) GetByID(id int64) (*Employee, error) {
	if e, ok := m.employees[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, ErrEmployeeNotFound
}

func (m *mockRepository) GetByEmail(email string) (*Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (m *mockRepository) List(offset, limit int) ([]*Employee, error) {
	out := make([]*Employee, 0, len(m.employees))
	for id := int64(1); id < m.nextID; id++ {
		if e, ok := m.employees[id]; ok {
			copied := *e
			out = append(out, &copied)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockRepository) Update(e *Employee) error {
	if _, ok := m.employees[e.ID]; !ok {
		return ErrEmployeeNotFound
	}
	copied := *e
	m.employees[e.ID] = &copied
	return nil
}

func (m *mockRepository) Delete(id int64) error {
	if _, ok := m.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = ginkgo.Describe("EmployeeService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
	)

	newEmployeeDTO := func(email string) CreateEmployeeDTO {
		return CreateEmployeeDTO{
			Email:    email,
			Name:     "Alice",
			Org:      "Engineering",
			Password: "s3cret",
		}
	}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo, stubHasher{}, logger.L())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("registers an employee with the ordinary role by default", func() {
			emp, err := service.Create(newEmployeeDTO("alice@example.com"))

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(emp.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(emp.Role).To(gomega.Equal(RoleUser))
			gomega.Expect(emp.PasswordHash).To(gomega.Equal("hashed:s3cret"))
		})

		ginkgo.It("honors an explicit superuser role", func() {
			dto := newEmployeeDTO("admin@example.com")
			dto.Role = RoleSuperuser

			emp, err := service.Create(dto)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(emp.Role.IsSuperuser()).To(gomega.BeTrue())
		})

		ginkgo.It("rejects a duplicate email and leaves the first record intact", func() {
			first, err := service.Create(newEmployeeDTO("alice@example.com"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			dup := newEmployeeDTO("alice@example.com")
			dup.Name = "Impostor"
			_, err = service.Create(dup)
			gomega.Expect(err).To(gomega.MatchError(ErrEmailAlreadyRegistered))

			stored, err := mockRepo.GetByID(first.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(stored.Name).To(gomega.Equal("Alice"))
		})

		ginkgo.It("rejects an invalid email address", func() {
			dto := newEmployeeDTO("not-an-email")
			_, err := service.Create(dto)

			gomega.Expect(err).To(gomega.HaveOccurred())
			_, isAppErr := internal.IsAppError(err)
			gomega.Expect(isAppErr).To(gomega.BeTrue())
		})

		ginkgo.It("rejects an unknown role", func() {
			dto := newEmployeeDTO("alice@example.com")
			dto.Role = Role("manager")

			_, err := service.Create(dto)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("List", func() {
		ginkgo.BeforeEach(func() {
			for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
				_, err := service.Create(newEmployeeDTO(email))
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			}
		})

		ginkgo.It("pages with skip and limit", func() {
			page, err := service.List(1, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(page).To(gomega.HaveLen(1))
			gomega.Expect(page[0].Email).To(gomega.Equal("b@example.com"))
		})

		ginkgo.It("returns an empty page past the end", func() {
			page, err := service.List(10, 10)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(page).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("Update", func() {
		var created *Employee

		ginkgo.BeforeEach(func() {
			var err error
			created, err = service.Create(newEmployeeDTO("alice@example.com"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("replaces every mutable field and re-hashes the password", func() {
			updated, err := service.Update(created.ID, CreateEmployeeDTO{
				Email:    "alice@example.com",
				Name:     "Alice B.",
				Org:      "Platform",
				Role:     RoleSuperuser,
				Password: "new_password",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Name).To(gomega.Equal("Alice B."))
			gomega.Expect(updated.Org).To(gomega.Equal("Platform"))
			gomega.Expect(updated.Role).To(gomega.Equal(RoleSuperuser))
			gomega.Expect(updated.PasswordHash).To(gomega.Equal("hashed:new_password"))
		})

		ginkgo.It("refuses to move to an email another employee holds", func() {
			_, err := service.Create(newEmployeeDTO("bob@example.com"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			dto := newEmployeeDTO("bob@example.com")
			_, err = service.Update(created.ID, dto)

			gomega.Expect(err).To(gomega.MatchError(ErrEmailAlreadyRegistered))
		})

		ginkgo.It("answers not found for an unknown id", func() {
			_, err := service.Update(999, newEmployeeDTO("ghost@example.com"))
			gomega.Expect(err).To(gomega.MatchError(ErrEmployeeNotFound))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("removes the employee and returns the deleted record", func() {
			created, err := service.Create(newEmployeeDTO("alice@example.com"))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			deleted, err := service.Delete(created.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(deleted.Email).To(gomega.Equal("alice@example.com"))

			_, err = service.GetByID(created.ID)
			gomega.Expect(err).To(gomega.MatchError(ErrEmployeeNotFound))
		})

		ginkgo.It("answers not found for an unknown id", func() {
			_, err := service.Delete(999)
			gomega.Expect(err).To(gomega.MatchError(ErrEmployeeNotFound))
		})
	})
})
