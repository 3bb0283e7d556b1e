package entity

// Session sesión offline de una tienda: el token de la Admin API que la app
// obtuvo durante la instalación. El ID sigue el formato "offline_<shop>".
type Session struct {
	ID          string
	Shop        string
	AccessToken string
	Scope       string
}

// OfflineSessionID devuelve el ID de la sesión offline de una tienda.
func OfflineSessionID(shop string) string {
	return "offline_" + shop
}
