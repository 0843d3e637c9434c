package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/skipro_backend/internal/model"
	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for every store interface, used to test
// the services without a database. Reads hand out copies so a service can
// only change stored state through the write methods, the way a real
// repository behaves.
type memStore struct {
	mu          sync.Mutex
	lessons     map[uuid.UUID]*model.Lesson
	clients     map[uuid.UUID]*model.Client
	instructors map[uuid.UUID]*model.Instructor
	ratings     []*model.LessonRating
	equipment   map[uuid.UUID]*model.Equipment
	rentals     map[uuid.UUID]*model.Rental
	employees   map[uuid.UUID]*model.Employee
}

func newMemStore() *memStore {
	return &memStore{
		lessons:     make(map[uuid.UUID]*model.Lesson),
		clients:     make(map[uuid.UUID]*model.Client),
		instructors: make(map[uuid.UUID]*model.Instructor),
		equipment:   make(map[uuid.UUID]*model.Equipment),
		rentals:     make(map[uuid.UUID]*model.Rental),
		employees:   make(map[uuid.UUID]*model.Employee),
	}
}

func copyLesson(l *model.Lesson) *model.Lesson {
	c := *l
	c.ClientIDs = append([]uuid.UUID(nil), l.ClientIDs...)
	return &c
}

func copyInstructor(i *model.Instructor) *model.Instructor {
	c := *i
	c.Ratings = append([]int(nil), i.Ratings...)
	return &c
}

// LessonStore

func (s *memStore) Create(ctx context.Context, lesson *model.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lesson.CreatedAt = time.Now()
	s.lessons[lesson.ID] = copyLesson(lesson)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return nil, nil
	}
	return copyLesson(l), nil
}

func (s *memStore) GetPlannedWithoutClient(ctx context.Context, clientID uuid.UUID) ([]*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Lesson
	for _, l := range s.lessons {
		if l.Status == model.LessonStatusPlanned && !l.IsEnrolled(clientID) {
			out = append(out, copyLesson(l))
		}
	}
	sortLessons(out)
	return out, nil
}

func (s *memStore) GetByClientAndStatus(ctx context.Context, clientID uuid.UUID, status model.LessonStatus) ([]*model.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Lesson
	for _, l := range s.lessons {
		if l.Status == status && l.IsEnrolled(clientID) {
			out = append(out, copyLesson(l))
		}
	}
	sortLessons(out)
	return out, nil
}

func (s *memStore) CountClients(ctx context.Context, lessonID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[lessonID]
	if !ok {
		return 0, nil
	}
	return len(l.ClientIDs), nil
}

func (s *memStore) UpdateStatus(ctx context.Context, id uuid.UUID, status model.LessonStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return fmt.Errorf("lesson not found")
	}
	l.Status = status
	return nil
}

func (s *memStore) UpdateCapacity(ctx context.Context, id uuid.UUID, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return fmt.Errorf("lesson not found")
	}
	l.Capacity = capacity
	return nil
}

func (s *memStore) AddClient(ctx context.Context, lessonID, clientID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[lessonID]
	if !ok {
		return fmt.Errorf("lesson not found")
	}
	if !l.IsEnrolled(clientID) {
		l.ClientIDs = append(l.ClientIDs, clientID)
	}
	return nil
}

func (s *memStore) RemoveClient(ctx context.Context, lessonID, clientID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[lessonID]
	if !ok {
		return false, nil
	}
	return l.Unenroll(clientID), nil
}

func (s *memStore) GetClients(ctx context.Context, lessonID uuid.UUID) ([]*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[lessonID]
	if !ok {
		return nil, nil
	}
	var out []*model.Client
	for _, id := range l.ClientIDs {
		if c, ok := s.clients[id]; ok {
			cc := *c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func sortLessons(lessons []*model.Lesson) {
	sort.Slice(lessons, func(i, j int) bool {
		return lessons[i].DateTime.Before(lessons[j].DateTime)
	})
}

// ClientStore (Create is on a wrapper to avoid clashing with the lesson
// Create above)

type memClientStore struct{ *memStore }

func (s memClientStore) Create(ctx context.Context, client *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client.CreatedAt = time.Now()
	c := *client
	s.clients[client.ID] = &c
	return nil
}

func (s memClientStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clients[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (s memClientStore) GetByName(ctx context.Context, firstName, lastName string) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.FirstName == firstName && c.LastName == lastName {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

// InstructorStore

type memInstructorStore struct{ *memStore }

func (s memInstructorStore) Create(ctx context.Context, instructor *model.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	instructor.CreatedAt = time.Now()
	s.instructors[instructor.ID] = copyInstructor(instructor)
	return nil
}

func (s memInstructorStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.instructors[id]
	if !ok {
		return nil, nil
	}
	return copyInstructor(i), nil
}

func (s memInstructorStore) GetAll(ctx context.Context) ([]*model.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Instructor
	for _, i := range s.instructors {
		out = append(out, copyInstructor(i))
	}
	return out, nil
}

func (s memInstructorStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.instructors[id]
	return ok, nil
}

// RatingStore

type memRatingStore struct{ *memStore }

func (s memRatingStore) Exists(ctx context.Context, lessonID, clientID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.ratings {
		if r.LessonID == lessonID && r.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (s memRatingStore) Create(ctx context.Context, rating *model.LessonRating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := *rating
	s.ratings = append(s.ratings, &r)
	if i, ok := s.instructors[rating.InstructorID]; ok {
		i.Ratings = append(i.Ratings, rating.Rating)
	}
	return nil
}

// EquipmentStore

type memEquipmentStore struct{ *memStore }

func (s memEquipmentStore) Create(ctx context.Context, equipment *model.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	equipment.CreatedAt = time.Now()
	e := *equipment
	s.equipment[equipment.ID] = &e
	return nil
}

func (s memEquipmentStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.equipment[id]
	if !ok {
		return nil, nil
	}
	ee := *e
	return &ee, nil
}

func (s memEquipmentStore) GetAll(ctx context.Context) ([]*model.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Equipment
	for _, e := range s.equipment {
		ee := *e
		out = append(out, &ee)
	}
	return out, nil
}

func (s memEquipmentStore) SetInUse(ctx context.Context, id uuid.UUID, inUse bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.equipment[id]
	if !ok || e.InUse == inUse {
		return false, nil
	}
	e.InUse = inUse
	return true, nil
}

// RentalStore

type memRentalStore struct{ *memStore }

func (s memRentalStore) Create(ctx context.Context, rental *model.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rental.RentedAt = time.Now()
	r := *rental
	s.rentals[rental.ID] = &r
	return nil
}

func (s memRentalStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rentals[id]
	if !ok {
		return nil, nil
	}
	rr := *r
	return &rr, nil
}

func (s memRentalStore) GetActiveByClient(ctx context.Context, clientID uuid.UUID) ([]*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Rental
	for _, r := range s.rentals {
		if r.ClientID == clientID && r.Status == model.RentalStatusActive {
			rr := *r
			out = append(out, &rr)
		}
	}
	return out, nil
}

func (s memRentalStore) GetOverdue(ctx context.Context, now time.Time) ([]*model.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Rental
	for _, r := range s.rentals {
		if r.Status == model.RentalStatusActive && r.PlannedReturnAt.Before(now) {
			rr := *r
			out = append(out, &rr)
		}
	}
	return out, nil
}

func (s memRentalStore) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rentals[id]
	if !ok || r.Status != model.RentalStatusActive {
		return false, nil
	}
	r.Status = model.RentalStatusReturned
	r.ReturnedAt = &returnedAt
	return true, nil
}

// EmployeeStore

type memEmployeeStore struct{ *memStore }

func (s memEmployeeStore) Create(ctx context.Context, employee *model.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	employee.CreatedAt = time.Now()
	e := *employee
	s.employees[employee.ID] = &e
	return nil
}

func (s memEmployeeStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	ee := *e
	return &ee, nil
}

func (s memEmployeeStore) GetByRole(ctx context.Context, role model.EmployeeRole) ([]*model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Employee
	for _, e := range s.employees {
		if e.Role == role {
			ee := *e
			out = append(out, &ee)
		}
	}
	return out, nil
}

func (s memEmployeeStore) GetAll(ctx context.Context) ([]*model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Employee
	for _, e := range s.employees {
		ee := *e
		out = append(out, &ee)
	}
	return out, nil
}

func (s memEmployeeStore) IncrementRentalsHandled(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok || e.Role != model.RoleRentalClerk {
		return fmt.Errorf("rental clerk not found")
	}
	e.RentalsHandled++
	return nil
}
