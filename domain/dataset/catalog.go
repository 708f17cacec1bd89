package dataset

// DescriptionCatalog maps variable names to human-readable descriptions.
// It is immutable once built; Lookup never fails.
type DescriptionCatalog struct {
	entries map[string]string
}

// NewDescriptionCatalog copies entries into a new catalog
func NewDescriptionCatalog(entries map[string]string) DescriptionCatalog {
	cp := make(map[string]string, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return DescriptionCatalog{entries: cp}
}

// Lookup returns the description for an exact name match, or "" on a miss
func (c DescriptionCatalog) Lookup(name string) string {
	return c.entries[name]
}

// Len returns the number of described variables
func (c DescriptionCatalog) Len() int {
	return len(c.entries)
}

// ECommerceDescriptions is the Spanish description catalog for the
// e-commerce churn dataset.
func ECommerceDescriptions() DescriptionCatalog {
	return NewDescriptionCatalog(map[string]string{
		"CustomerID":                  "ID único del cliente",
		"Churn":                       "Indicador de fuga (1 = se fue, 0 = se quedó)",
		"Tenure":                      "Antigüedad del cliente (p. ej., meses)",
		"PreferredLoginDevice":        "Dispositivo preferido para iniciar sesión",
		"CityTier":                    "Nivel de la ciudad (1 = grande, etc.)",
		"WarehouseToHome":             "Distancia almacén-hogar (p. ej., km)",
		"PreferredPaymentMode":        "Método de pago preferido",
		"Gender":                      "Género del cliente",
		"HourSpendOnApp":              "Horas de uso de la app",
		"NumberOfDeviceRegistered":    "Número de dispositivos registrados",
		"PreferedOrderCat":            "Categoría de productos más ordenada",
		"SatisfactionScore":           "Calificación de satisfacción (escala corta)",
		"MaritalStatus":               "Estado civil",
		"NumberOfAddress":             "Número de direcciones registradas",
		"Complain":                    "¿Ha hecho queja? (1 = Sí, 0 = No)",
		"OrderAmountHikeFromlastYear": "Incremento % del gasto vs. año previo",
		"CouponUsed":                  "Cantidad de cupones usados",
		"OrderCount":                  "Número de órdenes realizadas",
		"DaySinceLastOrder":           "Días desde la última orden",
		"CashbackAmount":              "Monto de cashback recibido",
	})
}

// ECommerceCategoricals lists the nominal and binary columns that are coerced
// to categorical on load. CityTier is ordinal but treated as nominal so no
// linearity is assumed.
func ECommerceCategoricals() []string {
	return []string{
		"PreferredLoginDevice",
		"PreferredPaymentMode",
		"Gender",
		"MaritalStatus",
		"Complain",
		"CityTier",
		"PreferedOrderCat",
	}
}
