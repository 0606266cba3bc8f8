package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	if user.Status == "" {
		user.Status = model.UserStatusPending
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	for _, u := range m.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByPhoneAndHospital(_ context.Context, phone, hospitalID string) (*model.User, error) {
	for _, u := range m.users {
		if u.PhoneNumber == phone && u.HospitalID == hospitalID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) ListByStatus(_ context.Context, status string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Status == status {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock HospitalRepository ──

type mockHospitalRepo struct {
	hospitals map[string]*model.Hospital
	seq       int
}

func newMockHospitalRepo() *mockHospitalRepo {
	return &mockHospitalRepo{hospitals: make(map[string]*model.Hospital)}
}

func (m *mockHospitalRepo) Create(_ context.Context, hospital *model.Hospital) error {
	if hospital.HospitalID == "" {
		m.seq++
		hospital.HospitalID = fmt.Sprintf("hosp-%d", m.seq)
	}
	m.hospitals[hospital.HospitalID] = hospital
	return nil
}

func (m *mockHospitalRepo) GetByID(_ context.Context, id string) (*model.Hospital, error) {
	if h, ok := m.hospitals[id]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHospitalRepo) List(_ context.Context) ([]model.Hospital, error) {
	var result []model.Hospital
	for _, h := range m.hospitals {
		result = append(result, *h)
	}
	return result, nil
}

func (m *mockHospitalRepo) Update(_ context.Context, hospital *model.Hospital) error {
	m.hospitals[hospital.HospitalID] = hospital
	return nil
}

func (m *mockHospitalRepo) Delete(_ context.Context, id string) error {
	delete(m.hospitals, id)
	return nil
}

// ── Mock StaffRepository ──

type mockStaffRepo struct {
	staff map[string]*model.Staff
	seq   int
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	if staff.StaffID == "" {
		m.seq++
		staff.StaffID = fmt.Sprintf("staff-%d", m.seq)
	}
	m.staff[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) GetByEmail(_ context.Context, email string) (*model.Staff, error) {
	for _, s := range m.staff {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock JointTypeRepository ──

type mockJointTypeRepo struct {
	types map[string]*model.JointType
	caps  *mockJointCapacityRepo
	seq   int
}

func newMockJointTypeRepo(caps *mockJointCapacityRepo) *mockJointTypeRepo {
	return &mockJointTypeRepo{types: make(map[string]*model.JointType), caps: caps}
}

func (m *mockJointTypeRepo) Create(_ context.Context, jt *model.JointType) error {
	if jt.JointTypeID == "" {
		m.seq++
		jt.JointTypeID = fmt.Sprintf("jt-%d", m.seq)
	}
	m.types[jt.JointTypeID] = jt
	return nil
}

func (m *mockJointTypeRepo) GetByID(_ context.Context, id string) (*model.JointType, error) {
	if jt, ok := m.types[id]; ok {
		return jt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJointTypeRepo) List(_ context.Context) ([]model.JointType, error) {
	var result []model.JointType
	for _, jt := range m.types {
		result = append(result, *jt)
	}
	return result, nil
}

func (m *mockJointTypeRepo) Update(_ context.Context, jt *model.JointType) error {
	m.types[jt.JointTypeID] = jt
	return nil
}

func (m *mockJointTypeRepo) Delete(ctx context.Context, id string) error {
	delete(m.types, id)
	return m.caps.ReplaceForJointType(ctx, id, nil)
}

// ── Mock JointCapacityRepository ──

type mockJointCapacityRepo struct {
	caps map[string]*model.JointCapacity
	seq  int
}

func newMockJointCapacityRepo() *mockJointCapacityRepo {
	return &mockJointCapacityRepo{caps: make(map[string]*model.JointCapacity)}
}

func (m *mockJointCapacityRepo) Create(_ context.Context, rule *model.JointCapacity) error {
	if rule.CapacityID == "" {
		m.seq++
		rule.CapacityID = fmt.Sprintf("cap-%d", m.seq)
	}
	m.caps[rule.CapacityID] = rule
	return nil
}

func (m *mockJointCapacityRepo) GetByID(_ context.Context, id string) (*model.JointCapacity, error) {
	if c, ok := m.caps[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJointCapacityRepo) FindExact(_ context.Context, jointTypeID, timeSlotID, governorate string) (*model.JointCapacity, error) {
	for _, c := range m.caps {
		if c.JointTypeID == jointTypeID && c.Governorate == governorate &&
			c.TimeSlotID != nil && *c.TimeSlotID == timeSlotID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJointCapacityRepo) FindGeneral(_ context.Context, jointTypeID, governorate string) (*model.JointCapacity, error) {
	for _, c := range m.caps {
		if c.JointTypeID == jointTypeID && c.Governorate == governorate && c.TimeSlotID == nil {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJointCapacityRepo) ListByJointTypeAndGovernorate(_ context.Context, jointTypeID, governorate string) ([]model.JointCapacity, error) {
	var result []model.JointCapacity
	for _, c := range m.caps {
		if c.JointTypeID == jointTypeID && c.Governorate == governorate {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockJointCapacityRepo) List(_ context.Context) ([]model.JointCapacity, error) {
	var result []model.JointCapacity
	for _, c := range m.caps {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockJointCapacityRepo) ExistsDuplicate(_ context.Context, jointTypeID string, timeSlotID *string, governorate, excludeID string) (bool, error) {
	for _, c := range m.caps {
		if c.CapacityID == excludeID {
			continue
		}
		if c.JointTypeID != jointTypeID || c.Governorate != governorate {
			continue
		}
		if timeSlotID == nil && c.TimeSlotID == nil {
			return true, nil
		}
		if timeSlotID != nil && c.TimeSlotID != nil && *timeSlotID == *c.TimeSlotID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockJointCapacityRepo) Update(_ context.Context, rule *model.JointCapacity) error {
	m.caps[rule.CapacityID] = rule
	return nil
}

func (m *mockJointCapacityRepo) Delete(_ context.Context, id string) error {
	delete(m.caps, id)
	return nil
}

func (m *mockJointCapacityRepo) ReplaceForJointType(ctx context.Context, jointTypeID string, caps []model.JointCapacity) error {
	for id, c := range m.caps {
		if c.JointTypeID == jointTypeID {
			delete(m.caps, id)
		}
	}
	for i := range caps {
		c := caps[i]
		if err := m.Create(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}

// ── Mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots map[string]*model.TimeSlot
	seq   int
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{slots: make(map[string]*model.TimeSlot)}
}

func (m *mockTimeSlotRepo) Create(_ context.Context, slot *model.TimeSlot) error {
	if slot.TimeSlotID == "" {
		m.seq++
		slot.TimeSlotID = fmt.Sprintf("ts-%d", m.seq)
	}
	m.slots[slot.TimeSlotID] = slot
	return nil
}

func (m *mockTimeSlotRepo) GetByID(_ context.Context, id string) (*model.TimeSlot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeSlotRepo) List(_ context.Context) ([]model.TimeSlot, error) {
	var result []model.TimeSlot
	for _, s := range m.slots {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime < result[j].StartTime })
	return result, nil
}

func (m *mockTimeSlotRepo) Update(_ context.Context, slot *model.TimeSlot) error {
	m.slots[slot.TimeSlotID] = slot
	return nil
}

func (m *mockTimeSlotRepo) Delete(_ context.Context, id string) error {
	delete(m.slots, id)
	return nil
}

// ── Mock BookingRepository ──

// mockBookingRepo mirrors the transactional admission semantics of the real
// implementation: CreateAdmitted counts active bookings for the tuple against
// the rule's capacity before inserting.
type mockBookingRepo struct {
	bookings map[string]*model.Booking
	events   []model.BookingEvent
	caps     *mockJointCapacityRepo
	users    *mockUserRepo
	jts      *mockJointTypeRepo
	slots    *mockTimeSlotRepo
	seq      int
}

func newMockBookingRepo(caps *mockJointCapacityRepo, users *mockUserRepo, jts *mockJointTypeRepo, slots *mockTimeSlotRepo) *mockBookingRepo {
	return &mockBookingRepo{
		bookings: make(map[string]*model.Booking),
		caps:     caps,
		users:    users,
		jts:      jts,
		slots:    slots,
	}
}

func isActiveStatus(status string) bool {
	for _, s := range repository.ActiveBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (m *mockBookingRepo) CreateAdmitted(ctx context.Context, booking *model.Booking, capacityID string) error {
	rule, ok := m.caps.caps[capacityID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	count, err := m.CountActive(ctx, booking.JointTypeID, booking.TimeSlotID, booking.Date, booking.Governorate)
	if err != nil {
		return err
	}
	if count >= int64(rule.Capacity) {
		return repository.ErrCapacityExceeded
	}

	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}
	m.seq++
	booking.BookingID = fmt.Sprintf("bk-%d", m.seq)
	m.bookings[booking.BookingID] = booking

	m.events = append(m.events, model.BookingEvent{
		BookingID: booking.BookingID,
		ActorType: model.ActorDoctor,
		ActorID:   &booking.UserID,
		Action:    model.BookingActionCreated,
	})
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// populate the associations the service reads
	if u, ok := m.users.users[b.UserID]; ok {
		b.User = u
	}
	if jt, ok := m.jts.types[b.JointTypeID]; ok {
		b.JointType = jt
	}
	if ts, ok := m.slots.slots[b.TimeSlotID]; ok {
		b.TimeSlot = ts
	}
	return b, nil
}

func (m *mockBookingRepo) ListByUser(_ context.Context, userID string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) ListByStatus(_ context.Context, status string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.Status == status {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) List(_ context.Context) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockBookingRepo) CountActive(_ context.Context, jointTypeID, timeSlotID, date, governorate string) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if b.JointTypeID == jointTypeID && b.TimeSlotID == timeSlotID &&
			b.Date == date && b.Governorate == governorate && isActiveStatus(b.Status) {
			count++
		}
	}
	return count, nil
}

func (m *mockBookingRepo) CountActiveBySlot(_ context.Context, jointTypeID, date, governorate string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, b := range m.bookings {
		if b.JointTypeID == jointTypeID && b.Date == date &&
			b.Governorate == governorate && isActiveStatus(b.Status) {
			counts[b.TimeSlotID]++
		}
	}
	return counts, nil
}

func (m *mockBookingRepo) Update(_ context.Context, booking *model.Booking) error {
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockBookingRepo) AppendEvent(_ context.Context, event *model.BookingEvent) error {
	m.events = append(m.events, *event)
	return nil
}

func (m *mockBookingRepo) ListEvents(_ context.Context, bookingID string) ([]model.BookingEvent, error) {
	var result []model.BookingEvent
	for _, e := range m.events {
		if e.BookingID == bookingID {
			result = append(result, e)
		}
	}
	return result, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	order         []string
	seq           int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.NotificationID == "" {
		m.seq++
		n.NotificationID = fmt.Sprintf("ntf-%d", m.seq)
	}
	m.notifications[n.NotificationID] = n
	m.order = append(m.order, n.NotificationID)
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id string) (*model.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string) ([]model.Notification, error) {
	var result []model.Notification
	for i := len(m.order) - 1; i >= 0; i-- {
		if n, ok := m.notifications[m.order[i]]; ok && n.UserID == userID {
			result = append(result, *n)
		}
	}
	return result, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id string) error {
	n, ok := m.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	n.Read = true
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range m.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, id string) error {
	delete(m.notifications, id)
	return nil
}

// ── aggregate helper ──

type testRepos struct {
	users         *mockUserRepo
	hospitals     *mockHospitalRepo
	staff         *mockStaffRepo
	jointTypes    *mockJointTypeRepo
	capacities    *mockJointCapacityRepo
	timeSlots     *mockTimeSlotRepo
	bookings      *mockBookingRepo
	notifications *mockNotificationRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	users := newMockUserRepo()
	hospitals := newMockHospitalRepo()
	staff := newMockStaffRepo()
	capacities := newMockJointCapacityRepo()
	jointTypes := newMockJointTypeRepo(capacities)
	timeSlots := newMockTimeSlotRepo()
	bookings := newMockBookingRepo(capacities, users, jointTypes, timeSlots)
	notifications := newMockNotificationRepo()

	mocks := &testRepos{
		users:         users,
		hospitals:     hospitals,
		staff:         staff,
		jointTypes:    jointTypes,
		capacities:    capacities,
		timeSlots:     timeSlots,
		bookings:      bookings,
		notifications: notifications,
	}

	repo := &repository.Repository{
		User:          users,
		Hospital:      hospitals,
		Staff:         staff,
		JointType:     jointTypes,
		JointCapacity: capacities,
		TimeSlot:      timeSlots,
		Booking:       bookings,
		Notification:  notifications,
	}
	return repo, mocks
}
