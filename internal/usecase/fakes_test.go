package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"

	"hospital-management/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB returns a gorm handle whose transactions are recorded by sqlmock.
// Fake repositories ignore the handle, so only BEGIN/COMMIT/ROLLBACK reach it.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func assertExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sql expectations: %v", err)
	}
}

// fakeUserRepo

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int]*entity.User{}}
}

func (r *fakeUserRepo) add(user entity.User) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = &user
	return &user
}

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	stored := r.add(*user)
	user.ID = stored.ID
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByLogin(ctx context.Context, db *gorm.DB, login string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == login || user.Email == login {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, db *gorm.DB, username, email string, excludeID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == excludeID {
			continue
		}
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Username = user.Username
	stored.Email = user.Email
	stored.Password = user.Password
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

// fakeProfileRepo keeps every RoleProfile variant and mirrors it onto the
// owning user so FindByID returns it preloaded.

type fakeProfileRepo struct {
	users    *fakeUserRepo
	nextID   int
	profiles []entity.RoleProfile
}

func newFakeProfileRepo(users *fakeUserRepo) *fakeProfileRepo {
	return &fakeProfileRepo{users: users, nextID: 1}
}

func (r *fakeProfileRepo) Create(ctx context.Context, db *gorm.DB, profile entity.RoleProfile) error {
	switch p := profile.(type) {
	case *entity.DoctorProfile:
		p.ID = r.nextID
	case *entity.PatientProfile:
		p.ID = r.nextID
	case *entity.ReceptionistProfile:
		p.ID = r.nextID
	default:
		return errors.New("unsupported profile")
	}
	r.nextID++
	r.profiles = append(r.profiles, profile)
	r.attach(profile)
	return nil
}

func (r *fakeProfileRepo) FindByUserID(ctx context.Context, db *gorm.DB, role string, userID int) (entity.RoleProfile, error) {
	for _, p := range r.profiles {
		if p.ProfileRole() == role && p.OwnerID() == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, db *gorm.DB, profile entity.RoleProfile) error {
	r.attach(profile)
	return nil
}

func (r *fakeProfileRepo) attach(profile entity.RoleProfile) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()
	if user, ok := r.users.users[profile.OwnerID()]; ok {
		attachProfile(user, profile)
	}
}

// fakeDoctorRepo

type fakeDoctorRepo struct {
	doctors map[int]*entity.DoctorProfile
	locked  []int
}

func newFakeDoctorRepo(doctors ...entity.DoctorProfile) *fakeDoctorRepo {
	r := &fakeDoctorRepo{doctors: map[int]*entity.DoctorProfile{}}
	for i := range doctors {
		d := doctors[i]
		r.doctors[d.ID] = &d
	}
	return r
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorProfile, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	clone := *d
	return &clone, nil
}

func (r *fakeDoctorRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.DoctorProfile, error) {
	for _, d := range r.doctors {
		if d.UserID == userID {
			clone := *d
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.DoctorProfile, error) {
	doctors := make([]entity.DoctorProfile, 0, len(r.doctors))
	for _, d := range r.doctors {
		doctors = append(doctors, *d)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}

func (r *fakeDoctorRepo) LockByID(ctx context.Context, tx *gorm.DB, id int) error {
	r.locked = append(r.locked, id)
	return nil
}

// fakePatientRepo

type fakePatientRepo struct {
	patients map[int]*entity.PatientProfile
}

func newFakePatientRepo(patients ...entity.PatientProfile) *fakePatientRepo {
	r := &fakePatientRepo{patients: map[int]*entity.PatientProfile{}}
	for i := range patients {
		p := patients[i]
		r.patients[p.ID] = &p
	}
	return r
}

func (r *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.PatientProfile, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePatientRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.PatientProfile, error) {
	for _, p := range r.patients {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.PatientProfile, error) {
	patients := make([]entity.PatientProfile, 0, len(r.patients))
	for _, p := range r.patients {
		patients = append(patients, *p)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

// fakeScheduleRepo

type fakeScheduleRepo struct {
	nextID    int
	schedules map[int]*entity.DoctorSchedule
}

func newFakeScheduleRepo(schedules ...entity.DoctorSchedule) *fakeScheduleRepo {
	r := &fakeScheduleRepo{nextID: 1, schedules: map[int]*entity.DoctorSchedule{}}
	for _, s := range schedules {
		_ = r.Create(context.Background(), nil, &s)
	}
	return r
}

func (r *fakeScheduleRepo) Create(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error {
	schedule.ID = r.nextID
	r.nextID++
	clone := *schedule
	r.schedules[clone.ID] = &clone
	return nil
}

func (r *fakeScheduleRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorSchedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeScheduleRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.DoctorSchedule, error) {
	var out []entity.DoctorSchedule
	for _, s := range r.schedules {
		if s.DoctorID == doctorID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeScheduleRepo) FindByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID int, dayOfWeek string) ([]entity.DoctorSchedule, error) {
	var out []entity.DoctorSchedule
	for _, s := range r.schedules {
		if s.DoctorID == doctorID && s.DayOfWeek == dayOfWeek {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeScheduleRepo) Update(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error {
	if _, ok := r.schedules[schedule.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *schedule
	r.schedules[clone.ID] = &clone
	return nil
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := r.schedules[id]; !ok {
		return 0, nil
	}
	delete(r.schedules, id)
	return 1, nil
}

// fakeAppointmentRepo

type fakeAppointmentRepo struct {
	nextID       int
	appointments map[int]*entity.Appointment

	// createErr, when set, is returned by Create instead of storing.
	createErr error
	// beforeUpdate runs against the stored row ahead of the status compare.
	beforeUpdate func(stored *entity.Appointment)
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1, appointments: map[int]*entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	appointment.ID = r.nextID
	r.nextID++
	clone := *appointment
	r.appointments[clone.ID] = &clone
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context, db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if filter.DoctorID != 0 && a.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != 0 && a.PatientID != filter.PatientID {
			continue
		}
		if filter.Date != "" && a.AppointmentDate.Format(entity.DateLayout) != filter.Date {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppointmentRepo) ExistsActiveAt(ctx context.Context, db *gorm.DB, doctorID int, date string, timeOfDay string) (bool, error) {
	for _, a := range r.appointments {
		if a.DoctorID == doctorID &&
			a.AppointmentDate.Format(entity.DateLayout) == date &&
			a.AppointmentTime == timeOfDay &&
			a.Status != entity.AppointmentStatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id int, from, to entity.AppointmentStatus, notes *string) (int64, error) {
	a, ok := r.appointments[id]
	if !ok {
		return 0, nil
	}
	if r.beforeUpdate != nil {
		r.beforeUpdate(a)
	}
	if a.Status != from {
		return 0, nil
	}
	a.Status = to
	if notes != nil {
		n := *notes
		a.Notes = &n
	}
	return 1, nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := r.appointments[id]; !ok {
		return 0, nil
	}
	delete(r.appointments, id)
	return 1, nil
}
