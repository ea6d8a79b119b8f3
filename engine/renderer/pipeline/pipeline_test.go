package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("Triangle")

	if p.PipelineKey() != "Triangle" {
		t.Fatalf("PipelineKey = %q", p.PipelineKey())
	}
	if p.Compiled() || p.RenderPipeline() != nil {
		t.Fatal("new pipeline should not be compiled")
	}
	if p.BlendEnabled() {
		t.Fatal("blending should default off")
	}

	prim := p.PrimitiveState()
	if prim.Topology != wgpu.PrimitiveTopologyTriangleList || prim.CullMode != wgpu.CullModeNone || prim.FrontFace != wgpu.FrontFaceCCW {
		t.Fatalf("PrimitiveState = %+v", prim)
	}
}

func TestLinePipelineState(t *testing.T) {
	p := NewPipeline("Line", WithTopology(wgpu.PrimitiveTopologyLineList), WithCullMode(wgpu.CullModeBack))

	prim := p.PrimitiveState()
	if prim.Topology != wgpu.PrimitiveTopologyLineList {
		t.Fatalf("Topology = %v, want line list", prim.Topology)
	}
	if prim.CullMode != wgpu.CullModeBack {
		t.Fatalf("CullMode = %v, want back", prim.CullMode)
	}
}

func TestDepthStencilState(t *testing.T) {
	ds := NewPipeline("Opaque").DepthStencilState(wgpu.TextureFormatDepth24Plus)
	if ds.Format != wgpu.TextureFormatDepth24Plus {
		t.Fatalf("Format = %v", ds.Format)
	}
	if ds.DepthCompare != wgpu.CompareFunctionLess || !ds.DepthWriteEnabled {
		t.Fatalf("depth state = %+v", ds)
	}
}

func TestColorTargetBlend(t *testing.T) {
	opaque := NewPipeline("Opaque").ColorTarget(wgpu.TextureFormatBGRA8Unorm)
	if opaque.Blend != nil || opaque.WriteMask != wgpu.ColorWriteMaskAll {
		t.Fatalf("opaque target = %+v", opaque)
	}

	blended := NewPipeline("Blended", WithBlendEnabled(true)).ColorTarget(wgpu.TextureFormatBGRA8Unorm)
	if blended.Blend == nil || blended.Blend.Color.SrcFactor != wgpu.BlendFactorSrcAlpha {
		t.Fatalf("blended target = %+v", blended)
	}
	if blended.Blend.Color.DstFactor != wgpu.BlendFactorOneMinusSrcAlpha {
		t.Fatalf("blended dst factor = %v", blended.Blend.Color.DstFactor)
	}
}

func TestReleaseUncompiled(t *testing.T) {
	p := NewPipeline("Line")
	p.Release()
	p.SetRenderPipeline(nil)
	if p.Compiled() {
		t.Fatal("nil pipeline should not count as compiled")
	}
}
