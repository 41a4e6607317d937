package service

import "time"

// Clock and protocol overrides for the external test package.

func (s *PayrollService) SetClock(now func() time.Time)         { s.now = now }
func (s *ProcurementService) SetClock(now func() time.Time)     { s.now = now }
func (s *PortariaService) SetClock(now func() time.Time)        { s.now = now }
func (s *MeetingService) SetClock(now func() time.Time)         { s.now = now }
func (s *NewsService) SetClock(now func() time.Time)            { s.now = now }
func (s *AssetService) SetClock(now func() time.Time)           { s.now = now }
func (s *DashboardService) SetClock(now func() time.Time)       { s.now = now }
func (s *PreRegistrationService) SetClock(now func() time.Time) { s.now = now }
func (s *SchoolManagerService) SetClock(now func() time.Time)   { s.now = now }

func (s *PreRegistrationService) SetProtocol(fn func(time.Time) (string, error)) { s.protocol = fn }

var NewProtocol = newProtocol
