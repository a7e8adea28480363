package domain

import (
	"errors"
	"fmt"
)

// User-facing texts. The product ships in Spanish only.
const (
	MsgWelcome            = "¡Bienvenido!"
	MsgSignedOut          = "Has cerrado sesión exitosamente."
	MsgSignOutFailed      = "Error al cerrar sesión."
	MsgMustSignIn         = "Debes iniciar sesión para registrarte."
	MsgSelectionRequired  = "Selecciona horario, fecha de inicio y plan de pago."
	MsgRegistrationFailed = "Error al procesar el registro. Por favor, intenta de nuevo."
	MsgLoadFailed         = "Error al cargar los registros."
	MsgUpdateFailed       = "Error al actualizar la inscripción."
	MsgDeleteConfirm      = "¿Estás seguro de que quieres eliminar esta inscripción?"
	MsgRegistrationGone   = "La inscripción ya no existe."
	MsgVersionConflict    = "La inscripción fue modificada por otro administrador. Actualiza e intenta de nuevo."
	MsgForbidden          = "No tienes permisos de administrador."
	MsgBootcampNotFound   = "El bootcamp seleccionado no existe."
	MsgInvalidRequest     = "La solicitud no es válida."

	MsgInvalidEmail     = "Por favor ingresa un correo válido"
	MsgAdminExists      = "Este correo ya está registrado como administrador"
	MsgAdminAdded       = "Administrador agregado exitosamente"
	MsgAdminRemoved     = "Administrador eliminado exitosamente"
	MsgAdminAddFailed   = "Error al agregar administrador"
	MsgAdminNotFound    = "El administrador no existe"
	MsgLastAdmin        = "No se puede eliminar al último administrador"
	MsgAdminsLoadFailed = "Error al cargar administradores"

	MsgInternal = "Error interno del servidor."
)

func RegistrationSucceeded(bootcampName string) string {
	return fmt.Sprintf("¡Te has registrado exitosamente en %s!", bootcampName)
}

func AdminRemoveConfirm(email string) string {
	return fmt.Sprintf("¿Estás seguro de eliminar al administrador %s?", email)
}

// UserMessage picks the Spanish text shown for a workflow error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotSignedIn), errors.Is(err, ErrSessionEnded):
		return MsgMustSignIn
	case errors.Is(err, ErrForbidden):
		return MsgForbidden
	case errors.Is(err, ErrBootcampNotFound):
		return MsgBootcampNotFound
	case errors.Is(err, ErrInvalidEmail):
		return MsgInvalidEmail
	case errors.Is(err, ErrAdminExists):
		return MsgAdminExists
	case errors.Is(err, ErrAdminNotFound):
		return MsgAdminNotFound
	case errors.Is(err, ErrLastAdmin):
		return MsgLastAdmin
	case errors.Is(err, ErrRegistrationNotFound):
		return MsgRegistrationGone
	case errors.Is(err, ErrVersionConflict):
		return MsgVersionConflict
	case errors.Is(err, ErrConfirmationRequired):
		return MsgDeleteConfirm
	case errors.Is(err, ErrValidation):
		return MsgSelectionRequired
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidPaymentStatus):
		return MsgUpdateFailed
	default:
		return MsgInternal
	}
}
