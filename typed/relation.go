package typed

// declared holds every (src, dst) pair Convert accepts. Each entry is a
// single hop, there is no transitive closure. Filled in init, read-only
// afterwards.
var declared = map[[2]Encoding]struct{}{}

// mesh declares conversions between every ordered pair of encs.
func mesh(encs ...Encoding) {
	for _, a := range encs {
		for _, b := range encs {
			declared[[2]Encoding{a, b}] = struct{}{}
		}
	}
}

// link declares conversions both ways between enc and each of others.
func link(enc Encoding, others ...Encoding) {
	for _, o := range others {
		declared[[2]Encoding{enc, o}] = struct{}{}
		declared[[2]Encoding{o, enc}] = struct{}{}
	}
}

func init() {
	mesh(
		encSrgbU8, encSrgbF32, encSrgbAU8, encSrgbAF32, encSrgbAU8Premultiplied,
		encLinearSrgb, encLinearSrgbA, encLinearSrgbAPremultiplied,
		encOklab,
	)
	mesh(encLinearSrgb, encCieXyz, encBt2020, encAcesCg, encAces2065, encDisplayP3)

	link(encOklch, encOklab, encLinearSrgb, encCieXyz, encSrgbU8, encSrgbF32)
	link(encCieXyz, encOklab, encSrgbU8, encSrgbF32)
	link(encAcesCg, encSrgbU8, encSrgbF32)
	link(encEncodedDisplayP3, encDisplayP3, encLinearSrgb, encSrgbU8, encSrgbF32, encOklab)
	link(encEncodedBt2100PQ, encBt2020, encLinearSrgb, encICtCpPQ)
	link(encICtCpPQ, encBt2020, encLinearSrgb)
}

func isDeclared(src, dst Encoding) bool {
	if src == dst {
		return true
	}
	_, ok := declared[[2]Encoding{src, dst}]
	return ok
}

// Convertible reports whether Convert[D] accepts values of S.
func Convertible[D Value[D], S Value[S]]() bool {
	var (
		d D
		s S
	)
	return isDeclared(s.Encoding(), d.Encoding())
}
