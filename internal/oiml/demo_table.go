package oiml

// demo_table.go carries the built-in demonstration MPE table, used when
// no CSV table is supplied. Values are illustrative, patterned on OIML
// R111 Table 1; replace with the official table for accredited work.

// demoRows spans 1 g to 50 kg. No E1 column: E1 tolerances are below
// what this demo resolution can illustrate.
var demoRows = map[float64]map[Class]float64{
	1:     {ClassE2: 1.0, ClassF1: 3.0, ClassF2: 10.0, ClassM1: 50.0, ClassM2: 150.0, ClassM3: 500.0},
	2:     {ClassE2: 1.2, ClassF1: 3.5, ClassF2: 12.0, ClassM1: 60.0, ClassM2: 180.0, ClassM3: 600.0},
	5:     {ClassE2: 1.5, ClassF1: 4.0, ClassF2: 15.0, ClassM1: 75.0, ClassM2: 225.0, ClassM3: 750.0},
	10:    {ClassE2: 2.0, ClassF1: 5.0, ClassF2: 20.0, ClassM1: 100.0, ClassM2: 300.0, ClassM3: 1000.0},
	20:    {ClassE2: 3.0, ClassF1: 8.0, ClassF2: 30.0, ClassM1: 150.0, ClassM2: 450.0, ClassM3: 1500.0},
	50:    {ClassE2: 5.0, ClassF1: 12.0, ClassF2: 50.0, ClassM1: 250.0, ClassM2: 750.0, ClassM3: 2500.0},
	100:   {ClassE2: 8.0, ClassF1: 20.0, ClassF2: 80.0, ClassM1: 400.0, ClassM2: 1200.0, ClassM3: 4000.0},
	200:   {ClassE2: 12.0, ClassF1: 30.0, ClassF2: 120.0, ClassM1: 600.0, ClassM2: 1800.0, ClassM3: 6000.0},
	500:   {ClassE2: 20.0, ClassF1: 50.0, ClassF2: 200.0, ClassM1: 1000.0, ClassM2: 3000.0, ClassM3: 10000.0},
	1000:  {ClassE2: 30.0, ClassF1: 80.0, ClassF2: 300.0, ClassM1: 1500.0, ClassM2: 4500.0, ClassM3: 15000.0},
	2000:  {ClassE2: 50.0, ClassF1: 120.0, ClassF2: 500.0, ClassM1: 2500.0, ClassM2: 7500.0, ClassM3: 25000.0},
	5000:  {ClassE2: 80.0, ClassF1: 200.0, ClassF2: 800.0, ClassM1: 4000.0, ClassM2: 12000.0, ClassM3: 40000.0},
	10000: {ClassE2: 120.0, ClassF1: 300.0, ClassF2: 1200.0, ClassM1: 6000.0, ClassM2: 18000.0, ClassM3: 60000.0},
	20000: {ClassE2: 200.0, ClassF1: 500.0, ClassF2: 2000.0, ClassM1: 10000.0, ClassM2: 30000.0, ClassM3: 100000.0},
	50000: {ClassE2: 300.0, ClassF1: 800.0, ClassF2: 3000.0, ClassM1: 15000.0, ClassM2: 45000.0, ClassM3: 150000.0},
}

// DemoTable returns the built-in demonstration table. The table is
// rebuilt on each call so callers can never alias each other's data.
func DemoTable() Table {
	t, err := NewTable(demoRows)
	if err != nil {
		// demoRows is a compile-time constant table; it cannot fail
		// validation unless edited inconsistently.
		panic("oiml: invalid demo table: " + err.Error())
	}
	return t
}
