//go:build windows

package webgpu

import "fmt"

// workgroupSize is the number of invocations per workgroup; workgroupShift
// is its base-2 logarithm.
const (
	workgroupSize  = 256
	workgroupShift = 8
)

// complexLibrary is prepended to every kernel. Complex64 values are stored
// as vec2<f32>. Classification works on the bit pattern because WGSL
// implementations may assume floats are finite. Infinity and NaN are read
// from the uniform: a constant expression evaluating to either is a shader
// creation error.
const complexLibrary = `
struct Params {
    size: u32,
    iterations: u32,
    tolerance: f32,
    factor: f32,
    c: vec2<f32>,
    inf_bits: u32,
    nan_bits: u32,
}

struct Optional {
    value: vec2<f32>,
    ok: u32,
}

fn f_inf() -> f32 { return bitcast<f32>(params.inf_bits); }
fn f_nan() -> f32 { return bitcast<f32>(params.nan_bits); }

fn f_is_finite(x: f32) -> bool {
    return (bitcast<u32>(x) & 0x7f800000u) != 0x7f800000u;
}

fn f_is_inf(x: f32) -> bool {
    return (bitcast<u32>(x) & 0x7fffffffu) == 0x7f800000u;
}

fn f_is_zero(x: f32) -> bool {
    return (bitcast<u32>(x) & 0x7fffffffu) == 0u;
}

fn f_is_normal(x: f32) -> bool {
    let e = bitcast<u32>(x) & 0x7f800000u;
    return e != 0u && e != 0x7f800000u;
}

fn c_zero() -> vec2<f32> { return vec2<f32>(0.0, 0.0); }
fn c_infinity() -> vec2<f32> { return vec2<f32>(f_inf(), 0.0); }

fn c_is_finite(z: vec2<f32>) -> bool { return f_is_finite(z.x) && f_is_finite(z.y); }
fn c_is_zero(z: vec2<f32>) -> bool { return f_is_zero(z.x) && f_is_zero(z.y); }

fn c_is_normal(z: vec2<f32>) -> bool {
    return c_is_finite(z) && (f_is_normal(z.x) || f_is_normal(z.y));
}

fn c_is_subnormal(z: vec2<f32>) -> bool {
    return c_is_finite(z) && !c_is_normal(z) && !c_is_zero(z);
}

fn c_equal(a: vec2<f32>, b: vec2<f32>) -> bool {
    let fa = c_is_finite(a);
    let fb = c_is_finite(b);
    if (!fa && !fb) {
        return true;
    }
    return fa && fb && a.x == b.x && a.y == b.y;
}

fn c_canonicalize(z: vec2<f32>) -> vec2<f32> {
    if (c_is_zero(z)) {
        return c_zero();
    }
    if (c_is_finite(z)) {
        return z;
    }
    return c_infinity();
}

fn c_conj(z: vec2<f32>) -> vec2<f32> { return vec2<f32>(z.x, -z.y); }

fn c_mul(a: vec2<f32>, b: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(a.x * b.x - a.y * b.y, a.x * b.y + a.y * b.x);
}

fn c_length_squared(z: vec2<f32>) -> f32 { return z.x * z.x + z.y * z.y; }

fn c_magnitude(z: vec2<f32>) -> f32 {
    if (!c_is_finite(z)) {
        return f_inf();
    }
    return max(abs(z.x), abs(z.y));
}

fn c_length(z: vec2<f32>) -> f32 {
    let naive = c_length_squared(z);
    if (f_is_normal(naive)) {
        return sqrt(naive);
    }
    if (!c_is_finite(z)) {
        return f_inf();
    }
    let m = c_magnitude(z);
    if (f_is_zero(m)) {
        return 0.0;
    }
    let s = z / m;
    return m * sqrt(c_length_squared(s));
}

fn c_phase(z: vec2<f32>) -> f32 {
    if (!c_is_finite(z) || c_is_zero(z)) {
        return f_nan();
    }
    return atan2(z.y, z.x);
}

fn c_div(z: vec2<f32>, w: vec2<f32>) -> vec2<f32> {
    let len_sq = c_length_squared(w);
    if (f_is_normal(len_sq)) {
        return c_mul(z, c_conj(w) / len_sq);
    }
    if (c_is_zero(w)) {
        return c_infinity();
    }
    if (c_is_zero(z) || !c_is_finite(w)) {
        return c_zero();
    }
    let z_scale = c_magnitude(z);
    let w_scale = c_magnitude(w);
    let zn = z / z_scale;
    let wn = w / w_scale;
    let r = c_mul(zn, c_conj(wn)) / c_length_squared(wn);
    let ratio = z_scale / w_scale;
    if (f_is_normal(ratio)) {
        return r * ratio;
    }
    if (f_is_normal(c_magnitude(r) * z_scale)) {
        return r * z_scale / w_scale;
    }
    return r / w_scale * z_scale;
}

fn c_normalized(z: vec2<f32>) -> Optional {
    let len = c_length(z);
    if (f_is_normal(len)) {
        return Optional(z / len, 1u);
    }
    if (c_is_zero(z) || !c_is_finite(z)) {
        return Optional(c_zero(), 0u);
    }
    let u = z / c_magnitude(z);
    return Optional(u / c_length(u), 1u);
}

fn c_reciprocal(z: vec2<f32>) -> Optional {
    let r = c_div(vec2<f32>(1.0, 0.0), z);
    if (c_is_normal(r) || c_is_zero(z) || !c_is_finite(z)) {
        return Optional(r, 1u);
    }
    return Optional(c_zero(), 0u);
}

fn c_from_polar(r: f32, phase: f32) -> vec2<f32> {
    if (f_is_finite(phase)) {
        return vec2<f32>(cos(phase), sin(phase)) * r;
    }
    if (f_is_inf(r)) {
        return c_infinity();
    }
    return c_zero();
}

fn julia(start: vec2<f32>) -> i32 {
    var z = start;
    for (var i = 0u; i < params.iterations; i++) {
        z = c_mul(z, z) + params.c;
        if (c_length(z) > params.tolerance) {
            return i32(i);
        }
    }
    return i32(params.iterations);
}

fn b2u(b: bool) -> u32 { return select(0u, 1u, b); }
`

// kernelKind selects the buffer bindings of a kernel.
type kernelKind int

const (
	unaryKind    kernelKind = iota // src, dst
	binaryKind                     // a, b, dst
	ternaryKind                    // a, b, c, dst
	optionalKind                   // src, dst, mask
)

// kernel describes one element-wise WGSL entry point.
type kernel struct {
	name string
	kind kernelKind
	in   string // WGSL element type of the inputs
	out  string // WGSL element type of the output
	body string // statements run for index idx
}

// source assembles the full WGSL module for k.
func (k kernel) source() string {
	var bindings string
	switch k.kind {
	case unaryKind:
		bindings = fmt.Sprintf(`
@group(0) @binding(0) var<storage, read> src: array<%s>;
@group(0) @binding(1) var<storage, read_write> dst: array<%s>;
@group(0) @binding(2) var<uniform> params: Params;
`, k.in, k.out)
	case binaryKind:
		bindings = fmt.Sprintf(`
@group(0) @binding(0) var<storage, read> a: array<%s>;
@group(0) @binding(1) var<storage, read> b: array<%s>;
@group(0) @binding(2) var<storage, read_write> dst: array<%s>;
@group(0) @binding(3) var<uniform> params: Params;
`, k.in, k.in, k.out)
	case ternaryKind:
		bindings = fmt.Sprintf(`
@group(0) @binding(0) var<storage, read> a: array<%[1]s>;
@group(0) @binding(1) var<storage, read> b: array<%[1]s>;
@group(0) @binding(2) var<storage, read> c: array<%[1]s>;
@group(0) @binding(3) var<storage, read_write> dst: array<%[2]s>;
@group(0) @binding(4) var<uniform> params: Params;
`, k.in, k.out)
	case optionalKind:
		bindings = fmt.Sprintf(`
@group(0) @binding(0) var<storage, read> src: array<%s>;
@group(0) @binding(1) var<storage, read_write> dst: array<%s>;
@group(0) @binding(2) var<storage, read_write> mask: array<u32>;
@group(0) @binding(3) var<uniform> params: Params;
`, k.in, k.out)
	}

	return bindings + complexLibrary + fmt.Sprintf(`
@compute @workgroup_size(%d)
fn main(@builtin(global_invocation_id) gid: vec3<u32>, @builtin(num_workgroups) groups: vec3<u32>) {
    let idx = gid.x + gid.y * groups.x * %du;
    if (idx >= params.size) {
        return;
    }
    %s
}
`, workgroupSize, workgroupSize, k.body)
}

func unaryKernel(name, out, expr string) kernel {
	return kernel{name: name, kind: unaryKind, in: "vec2<f32>", out: out, body: "dst[idx] = " + expr + ";"}
}

func binaryKernel(name, in, out, expr string) kernel {
	return kernel{name: name, kind: binaryKind, in: in, out: out, body: "dst[idx] = " + expr + ";"}
}

func optionalKernel(name, call string) kernel {
	return kernel{
		name: name, kind: optionalKind, in: "vec2<f32>", out: "vec2<f32>",
		body: "let r = " + call + "(src[idx]);\n    dst[idx] = r.value;\n    mask[idx] = r.ok;",
	}
}

const (
	c64  = "vec2<f32>"
	f32  = "f32"
	u32  = "u32"
	i32  = "i32"
	elem = "src[idx]"
	pair = "a[idx], b[idx]"
)

// Kernels for every GPU operation.
var (
	addKernel          = binaryKernel("add", c64, c64, "a[idx] + b[idx]")
	subKernel          = binaryKernel("sub", c64, c64, "a[idx] - b[idx]")
	mulKernel          = binaryKernel("mul", c64, c64, "c_mul("+pair+")")
	divKernel          = binaryKernel("div", c64, c64, "c_div("+pair+")")
	equalKernel        = binaryKernel("equal", c64, u32, "b2u(c_equal("+pair+"))")
	fromPolarKernel    = binaryKernel("from_polar", f32, c64, "c_from_polar("+pair+")")
	mulAddKernel       = kernel{name: "mul_add", kind: ternaryKind, in: c64, out: c64, body: "dst[idx] = c_mul(a[idx], b[idx]) + c[idx];"}
	negKernel          = unaryKernel("neg", c64, "-"+elem)
	conjKernel         = unaryKernel("conj", c64, "c_conj("+elem+")")
	canonicalizeKernel = unaryKernel("canonicalize", c64, "c_canonicalize("+elem+")")
	scaleKernel        = unaryKernel("scale", c64, elem+" * params.factor")
	mulByKernel        = unaryKernel("mul_by", c64, "c_mul("+elem+", params.c)")
	divByKernel        = unaryKernel("div_by", c64, "c_div("+elem+", params.c)")
	lengthKernel       = unaryKernel("length", f32, "c_length("+elem+")")
	lengthSqKernel     = unaryKernel("length_squared", f32, "c_length_squared("+elem+")")
	magnitudeKernel    = unaryKernel("magnitude", f32, "c_magnitude("+elem+")")
	phaseKernel        = unaryKernel("phase", f32, "c_phase("+elem+")")
	isFiniteKernel     = unaryKernel("is_finite", u32, "b2u(c_is_finite("+elem+"))")
	isZeroKernel       = unaryKernel("is_zero", u32, "b2u(c_is_zero("+elem+"))")
	isNormalKernel     = unaryKernel("is_normal", u32, "b2u(c_is_normal("+elem+"))")
	isSubnormalKernel  = unaryKernel("is_subnormal", u32, "b2u(c_is_subnormal("+elem+"))")
	juliaKernel        = unaryKernel("julia", i32, "julia("+elem+")")
	normalizeKernel    = optionalKernel("normalize", "c_normalized")
	reciprocalKernel   = optionalKernel("reciprocal", "c_reciprocal")
)
