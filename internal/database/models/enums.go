package models

// Role is the back-office profile of a user; permissions hang off it
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleHR             Role = "hr"
	RoleFinance        Role = "finance"
	RoleProcurement    Role = "procurement"
	RoleGovernance     Role = "governance"
	RoleCommunications Role = "communications"
	RoleInventory      Role = "inventory"
	RoleCredentialing  Role = "credentialing"
	RoleViewer         Role = "viewer"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleFinance, RoleProcurement, RoleGovernance,
		RoleCommunications, RoleInventory, RoleCredentialing, RoleViewer:
		return true
	}
	return false
}

// PositionKind distinguishes career positions from commissioned and temporary ones
type PositionKind string

const (
	PositionKindEffective    PositionKind = "effective"
	PositionKindCommissioned PositionKind = "commissioned"
	PositionKindTemporary    PositionKind = "temporary"
)

// IsValid checks if the PositionKind is valid
func (k PositionKind) IsValid() bool {
	switch k {
	case PositionKindEffective, PositionKindCommissioned, PositionKindTemporary:
		return true
	}
	return false
}

// EmployeeStatus is the employment situation of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

// PayrollKind is the type of a payroll run within a month
type PayrollKind string

const (
	PayrollKindMonthly       PayrollKind = "monthly"
	PayrollKindThirteenth    PayrollKind = "thirteenth"
	PayrollKindSupplementary PayrollKind = "supplementary"
)

// PayrollStatus is the lifecycle state of a payroll run
type PayrollStatus string

const (
	PayrollStatusOpen       PayrollStatus = "open"
	PayrollStatusProcessing PayrollStatus = "processing"
	PayrollStatusClosed     PayrollStatus = "closed"
	PayrollStatusReopened   PayrollStatus = "reopened"
)

// payrollTransitions lists the allowed next states of each payroll status
var payrollTransitions = map[PayrollStatus][]PayrollStatus{
	PayrollStatusOpen:       {PayrollStatusProcessing},
	PayrollStatusProcessing: {PayrollStatusOpen, PayrollStatusClosed},
	PayrollStatusClosed:     {PayrollStatusReopened},
	PayrollStatusReopened:   {PayrollStatusProcessing},
}

// CanTransitionTo reports whether a run in status s may move to next
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	for _, allowed := range payrollTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AcceptsEntries reports whether entries may be added, changed or removed
func (s PayrollStatus) AcceptsEntries() bool {
	return s == PayrollStatusOpen || s == PayrollStatusReopened
}

// Modality is the legal procurement modality of a case
type Modality string

const (
	ModalityPregao          Modality = "pregao"
	ModalityConcorrencia    Modality = "concorrencia"
	ModalityDispensa        Modality = "dispensa"
	ModalityInexigibilidade Modality = "inexigibilidade"
	ModalityConcurso        Modality = "concurso"
)

// IsValid checks if the Modality is valid
func (m Modality) IsValid() bool {
	switch m {
	case ModalityPregao, ModalityConcorrencia, ModalityDispensa, ModalityInexigibilidade, ModalityConcurso:
		return true
	}
	return false
}

// ProcurementStatus is the lifecycle state of a procurement case
type ProcurementStatus string

const (
	ProcurementStatusDraft      ProcurementStatus = "draft"
	ProcurementStatusInProgress ProcurementStatus = "in_progress"
	ProcurementStatusCompleted  ProcurementStatus = "completed"
	ProcurementStatusCancelled  ProcurementStatus = "cancelled"
)

// MeetingKind distinguishes ordinary and extraordinary council meetings
type MeetingKind string

const (
	MeetingKindOrdinary      MeetingKind = "ordinary"
	MeetingKindExtraordinary MeetingKind = "extraordinary"
)

// MeetingStatus is the state of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusHeld      MeetingStatus = "held"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// PortariaStatus is the lifecycle state of an ordinance
type PortariaStatus string

const (
	PortariaStatusDraft     PortariaStatus = "draft"
	PortariaStatusPublished PortariaStatus = "published"
	PortariaStatusRevoked   PortariaStatus = "revoked"
)

// NewsStatus is the publication state of a news article
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusArchived  NewsStatus = "archived"
)

// AssetStatus is the inventory state of an asset
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusWrittenOff  AssetStatus = "written_off"
)

// SchoolNetwork is the administrative network a school belongs to
type SchoolNetwork string

const (
	SchoolNetworkState     SchoolNetwork = "state"
	SchoolNetworkMunicipal SchoolNetwork = "municipal"
	SchoolNetworkPrivate   SchoolNetwork = "private"
	SchoolNetworkFederal   SchoolNetwork = "federal"
)

// PreRegistrationKind is who a public pre-registration is for
type PreRegistrationKind string

const (
	PreRegistrationKindEmployee      PreRegistrationKind = "employee"
	PreRegistrationKindSchoolManager PreRegistrationKind = "school_manager"
)

// PreRegistrationStatus is the review state of a pre-registration
type PreRegistrationStatus string

const (
	PreRegistrationStatusPending  PreRegistrationStatus = "pending"
	PreRegistrationStatusApproved PreRegistrationStatus = "approved"
	PreRegistrationStatusRejected PreRegistrationStatus = "rejected"
)

// ManagerStatus is the credential state of a school manager
type ManagerStatus string

const (
	ManagerStatusActive    ManagerStatus = "active"
	ManagerStatusSuspended ManagerStatus = "suspended"
)
