// Package access implements role resolution, capability derivation and the
// route guard: who the requester is, what they may touch, and where to send
// them when the answer is no.
package access

import (
	"aula/internal/domain/user"
)

// Capability is a named boolean permission gating a feature or route class.
type Capability string

const (
	CapabilityAdmin        Capability = "admin"
	CapabilityAcademy      Capability = "academy"
	CapabilityStudentPanel Capability = "student_panel"
	CapabilityTemario      Capability = "temario"
	CapabilityTests        Capability = "tests"
	CapabilityFlashcards   Capability = "flashcards"
)

// PermissionSet is the derived capability set for one (role, entitlement,
// override) triple. It is recomputed on every change and never persisted.
type PermissionSet struct {
	CanAccessAdmin        bool `json:"can_access_admin"`
	CanAccessAcademy      bool `json:"can_access_academy"`
	CanAccessStudentPanel bool `json:"can_access_student_panel"`
	CanAccessTemario      bool `json:"can_access_temario"`
	CanAccessTests        bool `json:"can_access_tests"`
	CanAccessFlashcards   bool `json:"can_access_flashcards"`
}

// FullPermissionSet returns the set with every capability granted.
func FullPermissionSet() PermissionSet {
	return PermissionSet{
		CanAccessAdmin:        true,
		CanAccessAcademy:      true,
		CanAccessStudentPanel: true,
		CanAccessTemario:      true,
		CanAccessTests:        true,
		CanAccessFlashcards:   true,
	}
}

// Has reports whether the named capability is granted.
func (p PermissionSet) Has(c Capability) bool {
	switch c {
	case CapabilityAdmin:
		return p.CanAccessAdmin
	case CapabilityAcademy:
		return p.CanAccessAcademy
	case CapabilityStudentPanel:
		return p.CanAccessStudentPanel
	case CapabilityTemario:
		return p.CanAccessTemario
	case CapabilityTests:
		return p.CanAccessTests
	case CapabilityFlashcards:
		return p.CanAccessFlashcards
	default:
		return false
	}
}

// Derive maps (role, entitlement, admin override) to a capability set. Pure
// table lookup, no I/O. The admin override and role==admin signals are OR'd:
// either one alone forces the full set.
func Derive(role user.Role, entitled bool, adminOverride bool) PermissionSet {
	if adminOverride || role.IsAdmin() {
		return FullPermissionSet()
	}

	switch role {
	case user.RoleAcademy:
		return PermissionSet{
			CanAccessAcademy:    true,
			CanAccessTemario:    entitled,
			CanAccessTests:      entitled,
			CanAccessFlashcards: entitled,
		}
	case user.RoleStudent:
		return PermissionSet{
			CanAccessStudentPanel: true,
			CanAccessTemario:      entitled,
			CanAccessTests:        entitled,
			CanAccessFlashcards:   entitled,
		}
	default:
		// guest and anything unrecognized get nothing
		return PermissionSet{}
	}
}
