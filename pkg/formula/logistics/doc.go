// Package logistics provides shipping and inventory formulas.
//
// ChargeableWeight compares actual weight against the volumetric weight
// derived from a courier divisor. EOQ and SafetyStock size replenishment
// orders; SafetyStock uses the standard normal quantile of the service level.
package logistics
